package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantKeywordRouting(t *testing.T) {
	uc := NewAssistantUseCase()

	reply := uc.Reply("Help me write a follow-up EMAIL to Jennifer")
	assert.True(t, strings.Contains(reply, "follow-up email"))

	reply = uc.Reply("how should I prep for the call tomorrow?")
	assert.True(t, strings.Contains(reply, "prepare for your call"))

	reply = uc.Reply("what's the best negotiation strategy here")
	assert.True(t, strings.Contains(reply, "consultative approach"))

	reply = uc.Reply("analyze my pipeline")
	assert.True(t, strings.Contains(reply, "pipeline analysis"))
}

func TestAssistantFallback(t *testing.T) {
	uc := NewAssistantUseCase()

	reply := uc.Reply("what's the weather like")
	assert.True(t, strings.Contains(reply, "more specific details"))

	// same fallback for an empty message
	assert.Equal(t, reply, uc.Reply(""))
}

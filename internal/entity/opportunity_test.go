package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDealValueShorthand(t *testing.T) {
	v, err := ParseDealValue("250k")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(250000), v)

	v, err = ParseDealValue("95K")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(95000), v)

	v, err = ParseDealValue("2.5k")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(2500), v)
}

func TestParseDealValuePlainNumbers(t *testing.T) {
	v, err := ParseDealValue("1500")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(1500), v)

	v, err = ParseDealValue("$1,200")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(1200), v)

	v, err = ParseDealValue(" 320k ")
	assert.NoError(t, err)
	assert.Equal(t, DealValue(320000), v)
}

func TestParseDealValueMalformed(t *testing.T) {
	_, err := ParseDealValue("")
	assert.Error(t, err)

	_, err = ParseDealValue("abc")
	assert.Error(t, err)

	_, err = ParseDealValue("12x")
	assert.Error(t, err)

	_, err = ParseDealValue("k")
	assert.Error(t, err)
}

func TestDealValueString(t *testing.T) {
	assert.Equal(t, "250k", DealValue(250000).String())
	assert.Equal(t, "1500", DealValue(1500).String())
	assert.Equal(t, "0", DealValue(0).String())
}

func TestDealValueJSON(t *testing.T) {
	data, err := json.Marshal(DealValue(180000))
	assert.NoError(t, err)
	assert.Equal(t, `"180k"`, string(data))

	var v DealValue
	assert.NoError(t, json.Unmarshal([]byte(`"95k"`), &v))
	assert.Equal(t, DealValue(95000), v)

	assert.NoError(t, json.Unmarshal([]byte(`42000`), &v))
	assert.Equal(t, DealValue(42000), v)

	assert.Error(t, json.Unmarshal([]byte(`"not a value"`), &v))
}

func TestNewOpportunityValidation(t *testing.T) {
	opp, err := NewOpportunity(OpportunityParams{
		Title:   "Enterprise Rollout",
		Company: "TechNova Solutions",
		Stage:   StageDiscovery,
		Value:   250000,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, opp.ID)
	assert.True(t, opp.CreatedAt.Equal(opp.UpdatedAt))

	_, err = NewOpportunity(OpportunityParams{Company: "TechNova Solutions", Stage: StageDiscovery})
	assert.Error(t, err)

	_, err = NewOpportunity(OpportunityParams{Title: "Enterprise Rollout", Company: "TechNova Solutions"})
	assert.Error(t, err)
}

func TestOpportunityApplyPatch(t *testing.T) {
	opp, err := NewOpportunity(OpportunityParams{
		Title:          "Enterprise Rollout",
		Company:        "TechNova Solutions",
		Stage:          StageDiscovery,
		Value:          250000,
		WinProbability: 50,
	})
	assert.NoError(t, err)

	stage := StageProposal
	value := DealValue(300000)
	opp.Apply(OpportunityPatch{Stage: &stage, Value: &value})

	assert.Equal(t, StageProposal, opp.Stage)
	assert.Equal(t, DealValue(300000), opp.Value)
	assert.Equal(t, "Enterprise Rollout", opp.Title)
	assert.Equal(t, 50, opp.WinProbability)
	assert.False(t, opp.UpdatedAt.Before(opp.CreatedAt))
}

func TestStageClosed(t *testing.T) {
	assert.True(t, StageClosedWon.Closed())
	assert.True(t, StageClosedLost.Closed())
	assert.False(t, StageNegotiation.Closed())
	assert.False(t, StageDiscovery.Closed())
}

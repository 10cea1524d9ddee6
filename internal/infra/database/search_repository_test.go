package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalSearchByPersonName(t *testing.T) {
	ctx := context.Background()
	repo := NewSearchRepository(newTestDB(t))

	result, err := repo.GlobalSearch(ctx, "jennifer")
	assert.NoError(t, err)

	assert.Len(t, result.Leads, 1)
	assert.Equal(t, "Jennifer Wilson", result.Leads[0].Name)

	assert.Len(t, result.Contacts, 1)
	assert.Equal(t, "1", result.Contacts[0].ID)

	// the opportunity matches on its contact name
	assert.Len(t, result.Opportunities, 1)
	assert.Equal(t, "Enterprise Software License", result.Opportunities[0].Title)

	assert.Empty(t, result.Accounts)
}

func TestGlobalSearchByIndustry(t *testing.T) {
	ctx := context.Background()
	repo := NewSearchRepository(newTestDB(t))

	result, err := repo.GlobalSearch(ctx, "analytics")
	assert.NoError(t, err)

	assert.Len(t, result.Accounts, 1)
	assert.Equal(t, "DataFlow Solutions", result.Accounts[0].Name)

	assert.Len(t, result.Leads, 1)
	assert.Equal(t, "2", result.Leads[0].ID)

	assert.Len(t, result.Opportunities, 1)
	assert.Equal(t, "Manufacturing Analytics Platform", result.Opportunities[0].Title)

	assert.Empty(t, result.Contacts)
}

func TestGlobalSearchNoMatches(t *testing.T) {
	ctx := context.Background()
	repo := NewSearchRepository(newTestDB(t))

	result, err := repo.GlobalSearch(ctx, "zzzz")
	assert.NoError(t, err)

	assert.NotNil(t, result.Leads)
	assert.NotNil(t, result.Opportunities)
	assert.NotNil(t, result.Accounts)
	assert.NotNil(t, result.Contacts)
	assert.Empty(t, result.Leads)
	assert.Empty(t, result.Opportunities)
	assert.Empty(t, result.Accounts)
	assert.Empty(t, result.Contacts)
}

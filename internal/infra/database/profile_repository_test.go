package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

func TestProfileGetSeeded(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	profile, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Sarah Johnson", profile.Name)
	assert.Equal(t, "$2.5M", profile.QuotaTarget)
	assert.Len(t, profile.DashboardWidgets, 6)
	assert.Equal(t, "pipeline-value", profile.DashboardWidgets[0])
}

func TestProfileUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	quota := "$3M"
	timezone := "EST"
	updated, err := repo.Update(ctx, entity.ProfilePatch{QuotaTarget: &quota, Timezone: &timezone})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "$3M", updated.QuotaTarget)
	assert.Equal(t, "EST", updated.Timezone)
	assert.Equal(t, "Sarah Johnson", updated.Name)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "$3M", got.QuotaTarget)
}

func TestProfileUpdateWidgetsReplacesList(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newTestDB(t))

	widgets := []string{"win-rate", "hot-leads"}
	updated, err := repo.UpdateWidgets(ctx, widgets)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, widgets, updated.DashboardWidgets)

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, widgets, got.DashboardWidgets)
}

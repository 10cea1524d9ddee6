package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

func TestActivityCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	scheduled := time.Date(2024, time.February, 5, 11, 0, 0, 0, time.UTC)
	activity, err := entity.NewActivity(entity.ActivityParams{
		Type:          entity.ActivityMeeting,
		Title:         "Kickoff Meeting",
		ContactName:   "Robert Chen",
		Company:       "DataFlow Solutions",
		Status:        entity.ActivityScheduled,
		Duration:      60,
		ScheduledDate: &scheduled,
		LeadID:        "2",
	})
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, activity))

	got, err := repo.FindByID(ctx, activity.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, entity.ActivityMeeting, got.Type)
	assert.Equal(t, 60, got.Duration)
	assert.NotNil(t, got.ScheduledDate)
	assert.True(t, got.ScheduledDate.Equal(scheduled))
	assert.Nil(t, got.CompletedDate)
	assert.Equal(t, "2", got.LeadID)
}

func TestActivityListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	recent, err := repo.ListRecent(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].ID)
	assert.Equal(t, "1", recent[1].ID)
}

func TestActivityRelationListings(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	byLead, err := repo.ListByLead(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, byLead, 1)
	assert.Equal(t, "Product Demo Completed", byLead[0].Title)

	byOpportunity, err := repo.ListByOpportunity(ctx, "3")
	assert.NoError(t, err)
	assert.Len(t, byOpportunity, 1)

	byAccount, err := repo.ListByAccount(ctx, "2")
	assert.NoError(t, err)
	assert.Len(t, byAccount, 1)

	byContact, err := repo.ListByContact(ctx, "no-such-contact")
	assert.NoError(t, err)
	assert.Empty(t, byContact)
}

func TestActivityUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	status := entity.ActivityCompleted
	outcome := entity.OutcomeSuccessful
	completed := time.Date(2024, time.January, 30, 15, 30, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, "3", entity.ActivityPatch{
		Status:        &status,
		Outcome:       &outcome,
		CompletedDate: &completed,
	})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, entity.ActivityCompleted, updated.Status)
	assert.Equal(t, entity.OutcomeSuccessful, updated.Outcome)
	assert.NotNil(t, updated.CompletedDate)
	assert.True(t, updated.CreatedAt.Equal(time.Date(2024, time.January, 26, 9, 0, 0, 0, time.UTC)))
}

func TestActivityDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(newTestDB(t))

	assert.NoError(t, repo.Delete(ctx, "1"))
	assert.NoError(t, repo.Delete(ctx, "1"))

	got, err := repo.FindByID(ctx, "1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

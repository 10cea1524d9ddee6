package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

func TestLeadCreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewLeadRepository(db)

	lead, err := entity.NewLead(entity.LeadParams{
		Name:    "Alex Morgan",
		Email:   "alex.morgan@example.com",
		Company: "Example Inc",
		Status:  entity.LeadStatusWarm,
		Score:   6.1,
	})
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, lead))

	got, err := repo.FindByID(ctx, lead.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Alex Morgan", got.Name)
	assert.Equal(t, entity.LeadStatusWarm, got.Status)
	assert.Equal(t, 6.1, got.Score)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(lead.CreatedAt))
}

func TestLeadFindByIDUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository(newTestDB(t))

	got, err := repo.FindByID(ctx, "no-such-lead")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLeadListSeeded(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository(newTestDB(t))

	leads, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, leads, 4)
	assert.Equal(t, "Jennifer Wilson", leads[0].Name)
	assert.Equal(t, entity.LeadStatusHot, leads[0].Status)
	assert.Equal(t, "1", leads[0].AccountID)
	assert.Empty(t, leads[3].AccountID)
}

func TestLeadUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository(newTestDB(t))

	status := entity.LeadStatusCold
	notes := "Went quiet after the demo."
	updated, err := repo.Update(ctx, "1", entity.LeadPatch{Status: &status, Notes: &notes})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, entity.LeadStatusCold, updated.Status)
	assert.Equal(t, notes, updated.Notes)

	// untouched fields survive the patch
	assert.Equal(t, "Jennifer Wilson", updated.Name)
	assert.Equal(t, 9.2, updated.Score)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	got, err := repo.FindByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusCold, got.Status)
	assert.True(t, got.UpdatedAt.Equal(updated.UpdatedAt))
}

func TestLeadUpdateUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository(newTestDB(t))

	name := "Nobody"
	updated, err := repo.Update(ctx, "no-such-lead", entity.LeadPatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestLeadDeleteCascadesActivitiesNotOpportunities(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	leads := NewLeadRepository(db)
	activities := NewActivityRepository(db)
	opportunities := NewOpportunityRepository(db)

	assert.NoError(t, leads.Delete(ctx, "2"))

	gone, err := activities.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.Nil(t, gone)

	// the opportunity created from the lead survives, back-reference cleared
	opp, err := opportunities.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.NotNil(t, opp)
	assert.Empty(t, opp.LeadID)
}

func TestLeadDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewLeadRepository(newTestDB(t))

	assert.NoError(t, repo.Delete(ctx, "4"))
	assert.NoError(t, repo.Delete(ctx, "4"))

	got, err := repo.FindByID(ctx, "4")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

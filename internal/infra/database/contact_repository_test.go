package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

func TestContactCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))

	contact, err := entity.NewContact(entity.ContactParams{
		Name:      "Priya Patel",
		Email:     "priya.patel@technova.com",
		Title:     "Procurement Lead",
		AccountID: "1",
		IsPrimary: false,
	})
	assert.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, contact))

	got, err := repo.FindByID(ctx, contact.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Priya Patel", got.Name)
	assert.Equal(t, "1", got.AccountID)
	assert.False(t, got.IsPrimary)
}

func TestContactCreateUnknownAccountFails(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))

	contact, err := entity.NewContact(entity.ContactParams{
		Name:      "Ghost Contact",
		Email:     "ghost@example.com",
		AccountID: "no-such-account",
	})
	assert.NoError(t, err)
	assert.Error(t, repo.Create(ctx, contact))
}

func TestContactUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(newTestDB(t))

	title := "SVP of Technology"
	primary := false
	updated, err := repo.Update(ctx, "1", entity.ContactPatch{Title: &title, IsPrimary: &primary})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "SVP of Technology", updated.Title)
	assert.False(t, updated.IsPrimary)
	assert.Equal(t, "Jennifer Wilson", updated.Name)
}

func TestContactDeleteClearsOpportunityReference(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	contacts := NewContactRepository(db)
	opportunities := NewOpportunityRepository(db)
	activities := NewActivityRepository(db)

	assert.NoError(t, contacts.Delete(ctx, "2"))

	opp, err := opportunities.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.NotNil(t, opp)
	assert.Empty(t, opp.ContactID)

	// the contact's activity history goes with it
	gone, err := activities.FindByID(ctx, "2")
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

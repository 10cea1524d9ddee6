package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityCall     ActivityType = "call"
	ActivityEmail    ActivityType = "email"
	ActivityMeeting  ActivityType = "meeting"
	ActivityDemo     ActivityType = "demo"
	ActivityProposal ActivityType = "proposal"
	ActivityFollowUp ActivityType = "follow-up"
)

type ActivityStatus string

const (
	ActivityCompleted ActivityStatus = "completed"
	ActivityPending   ActivityStatus = "pending"
	ActivityScheduled ActivityStatus = "scheduled"
)

type ActivityOutcome string

const (
	OutcomeSuccessful     ActivityOutcome = "successful"
	OutcomeUnsuccessful   ActivityOutcome = "unsuccessful"
	OutcomeFollowUpNeeded ActivityOutcome = "follow-up-needed"
	OutcomeNoAnswer       ActivityOutcome = "no-answer"
)

// Activity is a logged interaction. It is append-style history: it has no
// UpdatedAt, only CreatedAt, and may point at any combination of the other
// entities.
type Activity struct {
	ID            string          `json:"id"`
	Type          ActivityType    `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ContactName   string          `json:"contact_name"`
	Company       string          `json:"company"`
	Status        ActivityStatus  `json:"status"`
	Duration      int             `json:"duration,omitempty"` // minutes
	Outcome       ActivityOutcome `json:"outcome,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	LeadID        string          `json:"lead_id,omitempty"`
	OpportunityID string          `json:"opportunity_id,omitempty"`
	AccountID     string          `json:"account_id,omitempty"`
	ContactID     string          `json:"contact_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ActivityParams struct {
	Type          ActivityType    `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ContactName   string          `json:"contact_name"`
	Company       string          `json:"company"`
	Status        ActivityStatus  `json:"status"`
	Duration      int             `json:"duration,omitempty"`
	Outcome       ActivityOutcome `json:"outcome,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	LeadID        string          `json:"lead_id,omitempty"`
	OpportunityID string          `json:"opportunity_id,omitempty"`
	AccountID     string          `json:"account_id,omitempty"`
	ContactID     string          `json:"contact_id,omitempty"`
}

func NewActivity(p ActivityParams) (*Activity, error) {
	activity := &Activity{
		ID:            uuid.New().String(),
		Type:          p.Type,
		Title:         p.Title,
		Description:   p.Description,
		ContactName:   p.ContactName,
		Company:       p.Company,
		Status:        p.Status,
		Duration:      p.Duration,
		Outcome:       p.Outcome,
		Notes:         p.Notes,
		ScheduledDate: p.ScheduledDate,
		CompletedDate: p.CompletedDate,
		LeadID:        p.LeadID,
		OpportunityID: p.OpportunityID,
		AccountID:     p.AccountID,
		ContactID:     p.ContactID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

func (a *Activity) Validate() error {
	if a.Type == "" {
		return errors.New("type is required")
	}
	if a.Title == "" {
		return errors.New("title is required")
	}
	if a.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type ActivityPatch struct {
	Type          *ActivityType    `json:"type,omitempty"`
	Title         *string          `json:"title,omitempty"`
	Description   *string          `json:"description,omitempty"`
	ContactName   *string          `json:"contact_name,omitempty"`
	Company       *string          `json:"company,omitempty"`
	Status        *ActivityStatus  `json:"status,omitempty"`
	Duration      *int             `json:"duration,omitempty"`
	Outcome       *ActivityOutcome `json:"outcome,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	ScheduledDate *time.Time       `json:"scheduled_date,omitempty"`
	CompletedDate *time.Time       `json:"completed_date,omitempty"`
	LeadID        *string          `json:"lead_id,omitempty"`
	OpportunityID *string          `json:"opportunity_id,omitempty"`
	AccountID     *string          `json:"account_id,omitempty"`
	ContactID     *string          `json:"contact_id,omitempty"`
}

func (a *Activity) Apply(p ActivityPatch) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ContactName != nil {
		a.ContactName = *p.ContactName
	}
	if p.Company != nil {
		a.Company = *p.Company
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Outcome != nil {
		a.Outcome = *p.Outcome
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.ScheduledDate != nil {
		a.ScheduledDate = p.ScheduledDate
	}
	if p.CompletedDate != nil {
		a.CompletedDate = p.CompletedDate
	}
	if p.LeadID != nil {
		a.LeadID = *p.LeadID
	}
	if p.OpportunityID != nil {
		a.OpportunityID = *p.OpportunityID
	}
	if p.AccountID != nil {
		a.AccountID = *p.AccountID
	}
	if p.ContactID != nil {
		a.ContactID = *p.ContactID
	}
}

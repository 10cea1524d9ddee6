package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusHot  LeadStatus = "Hot"
	LeadStatusWarm LeadStatus = "Warm"
	LeadStatusCold LeadStatus = "Cold"
)

type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Company   string     `json:"company"`
	Industry  string     `json:"industry"`
	Location  string     `json:"location"`
	Score     float64    `json:"score"` // 0-10
	Status    LeadStatus `json:"status"`
	AIInsight string     `json:"ai_insight"`
	Notes     string     `json:"notes,omitempty"`
	Source    string     `json:"source,omitempty"`
	AccountID string     `json:"account_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LeadParams carries everything a caller provides; id and timestamps are assigned here.
type LeadParams struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Company   string     `json:"company"`
	Industry  string     `json:"industry"`
	Location  string     `json:"location"`
	Score     float64    `json:"score"`
	Status    LeadStatus `json:"status"`
	AIInsight string     `json:"ai_insight"`
	Notes     string     `json:"notes,omitempty"`
	Source    string     `json:"source,omitempty"`
	AccountID string     `json:"account_id,omitempty"`
}

func NewLead(p LeadParams) (*Lead, error) {
	now := time.Now().UTC()
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Company:   p.Company,
		Industry:  p.Industry,
		Location:  p.Location,
		Score:     p.Score,
		Status:    p.Status,
		AIInsight: p.AIInsight,
		Notes:     p.Notes,
		Source:    p.Source,
		AccountID: p.AccountID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// LeadPatch is a partial update; nil fields are left untouched.
type LeadPatch struct {
	Name      *string     `json:"name,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	Company   *string     `json:"company,omitempty"`
	Industry  *string     `json:"industry,omitempty"`
	Location  *string     `json:"location,omitempty"`
	Score     *float64    `json:"score,omitempty"`
	Status    *LeadStatus `json:"status,omitempty"`
	AIInsight *string     `json:"ai_insight,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
	Source    *string     `json:"source,omitempty"`
	AccountID *string     `json:"account_id,omitempty"`
}

func (l *Lead) Apply(p LeadPatch) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.Industry != nil {
		l.Industry = *p.Industry
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Score != nil {
		l.Score = *p.Score
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.AIInsight != nil {
		l.AIInsight = *p.AIInsight
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.AccountID != nil {
		l.AccountID = *p.AccountID
	}
	l.UpdatedAt = time.Now().UTC()
}

package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageDiscovery     Stage = "Discovery"
	StageQualification Stage = "Qualification"
	StageProposal      Stage = "Proposal"
	StageNegotiation   Stage = "Negotiation"
	StageClosedWon     Stage = "Closed Won"
	StageClosedLost    Stage = "Closed Lost"
)

// OpenStages are the stages that still count toward the pipeline.
var OpenStages = []Stage{StageDiscovery, StageQualification, StageProposal, StageNegotiation}

func (s Stage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// DealValue is a deal amount in whole dollars. The mobile client has always
// exchanged values in shorthand ("250k"), so the JSON codec keeps that wire
// form while the Go side stays numeric.
type DealValue int64

func ParseDealValue(s string) (DealValue, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, errors.New("deal value is empty")
	}

	if strings.HasSuffix(raw, "k") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(raw, "k"), 64)
		if err != nil {
			return 0, fmt.Errorf("malformed deal value %q", s)
		}
		return DealValue(math.Round(n * 1000)), nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed deal value %q", s)
	}
	return DealValue(n), nil
}

func (v DealValue) String() string {
	if v != 0 && v%1000 == 0 {
		return strconv.FormatInt(int64(v)/1000, 10) + "k"
	}
	return strconv.FormatInt(int64(v), 10)
}

func (v DealValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *DealValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] != '"' {
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = DealValue(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDealValue(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

type Opportunity struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	ContactName    string    `json:"contact_name"`
	Value          DealValue `json:"value"`
	Stage          Stage     `json:"stage"`
	CloseDate      time.Time `json:"close_date"`
	WinProbability int       `json:"win_probability"` // 0-100, not enforced here
	Urgent         bool      `json:"urgent"`
	AIAnalysis     string    `json:"ai_analysis"`
	Description    string    `json:"description,omitempty"`
	LeadID         string    `json:"lead_id,omitempty"`
	AccountID      string    `json:"account_id,omitempty"`
	ContactID      string    `json:"contact_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type OpportunityParams struct {
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	ContactName    string    `json:"contact_name"`
	Value          DealValue `json:"value"`
	Stage          Stage     `json:"stage"`
	CloseDate      time.Time `json:"close_date"`
	WinProbability int       `json:"win_probability"`
	Urgent         bool      `json:"urgent"`
	AIAnalysis     string    `json:"ai_analysis"`
	Description    string    `json:"description,omitempty"`
	LeadID         string    `json:"lead_id,omitempty"`
	AccountID      string    `json:"account_id,omitempty"`
	ContactID      string    `json:"contact_id,omitempty"`
}

func NewOpportunity(p OpportunityParams) (*Opportunity, error) {
	now := time.Now().UTC()
	opp := &Opportunity{
		ID:             uuid.New().String(),
		Title:          p.Title,
		Company:        p.Company,
		ContactName:    p.ContactName,
		Value:          p.Value,
		Stage:          p.Stage,
		CloseDate:      p.CloseDate,
		WinProbability: p.WinProbability,
		Urgent:         p.Urgent,
		AIAnalysis:     p.AIAnalysis,
		Description:    p.Description,
		LeadID:         p.LeadID,
		AccountID:      p.AccountID,
		ContactID:      p.ContactID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := opp.Validate(); err != nil {
		return nil, err
	}

	return opp, nil
}

func (o *Opportunity) Validate() error {
	if o.Title == "" {
		return errors.New("title is required")
	}
	if o.Company == "" {
		return errors.New("company is required")
	}
	if o.Stage == "" {
		return errors.New("stage is required")
	}
	return nil
}

type OpportunityPatch struct {
	Title          *string    `json:"title,omitempty"`
	Company        *string    `json:"company,omitempty"`
	ContactName    *string    `json:"contact_name,omitempty"`
	Value          *DealValue `json:"value,omitempty"`
	Stage          *Stage     `json:"stage,omitempty"`
	CloseDate      *time.Time `json:"close_date,omitempty"`
	WinProbability *int       `json:"win_probability,omitempty"`
	Urgent         *bool      `json:"urgent,omitempty"`
	AIAnalysis     *string    `json:"ai_analysis,omitempty"`
	Description    *string    `json:"description,omitempty"`
	LeadID         *string    `json:"lead_id,omitempty"`
	AccountID      *string    `json:"account_id,omitempty"`
	ContactID      *string    `json:"contact_id,omitempty"`
}

func (o *Opportunity) Apply(p OpportunityPatch) {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Company != nil {
		o.Company = *p.Company
	}
	if p.ContactName != nil {
		o.ContactName = *p.ContactName
	}
	if p.Value != nil {
		o.Value = *p.Value
	}
	if p.Stage != nil {
		o.Stage = *p.Stage
	}
	if p.CloseDate != nil {
		o.CloseDate = *p.CloseDate
	}
	if p.WinProbability != nil {
		o.WinProbability = *p.WinProbability
	}
	if p.Urgent != nil {
		o.Urgent = *p.Urgent
	}
	if p.AIAnalysis != nil {
		o.AIAnalysis = *p.AIAnalysis
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.LeadID != nil {
		o.LeadID = *p.LeadID
	}
	if p.AccountID != nil {
		o.AccountID = *p.AccountID
	}
	if p.ContactID != nil {
		o.ContactID = *p.ContactID
	}
	o.UpdatedAt = time.Now().UTC()
}

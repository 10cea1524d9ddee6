package usecase

import (
	"context"
	"time"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

// defaultAnalysis is the placeholder attached to opportunities created from a
// lead until a real analysis replaces it.
const defaultAnalysis = "Converted from lead. Needs qualification."

// ConvertLeadInput carries the caller's overrides; zero values fall back to
// the conversion defaults (the client has always treated 0/"" as unset).
type ConvertLeadInput struct {
	Title          string           `json:"title,omitempty"`
	Value          entity.DealValue `json:"value,omitempty"`
	Stage          entity.Stage     `json:"stage,omitempty"`
	CloseDate      *time.Time       `json:"close_date,omitempty"`
	WinProbability int              `json:"win_probability,omitempty"`
	Urgent         bool             `json:"urgent,omitempty"`
	AIAnalysis     string           `json:"ai_analysis,omitempty"`
	Description    string           `json:"description,omitempty"`
}

type ConvertLeadUseCase struct {
	Leads         LeadRepositoryInterface
	Opportunities OpportunityRepositoryInterface
}

func NewConvertLeadUseCase(leads LeadRepositoryInterface, opps OpportunityRepositoryInterface) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{Leads: leads, Opportunities: opps}
}

// Execute creates exactly one opportunity from the lead. The lead itself is
// left untouched: conversion preserves lead history, and converting the same
// lead again is allowed.
func (uc *ConvertLeadUseCase) Execute(ctx context.Context, leadID string, input ConvertLeadInput) (*entity.Opportunity, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	title := input.Title
	if title == "" {
		title = lead.Company + " Opportunity"
	}

	stage := input.Stage
	if stage == "" {
		stage = entity.StageDiscovery
	}

	winProbability := input.WinProbability
	if winProbability == 0 {
		winProbability = 50
	}

	closeDate := time.Now().UTC().AddDate(0, 0, 30)
	if input.CloseDate != nil {
		closeDate = *input.CloseDate
	}

	analysis := input.AIAnalysis
	if analysis == "" {
		analysis = defaultAnalysis
	}

	opp, err := entity.NewOpportunity(entity.OpportunityParams{
		Title:          title,
		Company:        lead.Company,
		ContactName:    lead.Name,
		Value:          input.Value,
		Stage:          stage,
		CloseDate:      closeDate,
		WinProbability: winProbability,
		Urgent:         input.Urgent,
		AIAnalysis:     analysis,
		Description:    input.Description,
		LeadID:         lead.ID,
		AccountID:      lead.AccountID,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.Opportunities.Create(ctx, opp); err != nil {
		return nil, err
	}

	return opp, nil
}

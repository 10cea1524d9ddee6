package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

func statsFixtures() ([]entity.Lead, []entity.Opportunity, []entity.Activity) {
	leads := []entity.Lead{
		{ID: "1", Name: "Jennifer Wilson", Status: entity.LeadStatusHot},
		{ID: "2", Name: "Robert Chen", Status: entity.LeadStatusWarm},
		{ID: "3", Name: "Maria Rodriguez", Status: entity.LeadStatusHot},
	}
	opps := []entity.Opportunity{
		{ID: "1", Title: "Enterprise License", Value: 250_000, Stage: entity.StageProposal, WinProbability: 85, Urgent: true},
		{ID: "2", Title: "Cloud Migration", Value: 180_000, Stage: entity.StageNegotiation, WinProbability: 72},
		{ID: "3", Title: "Analytics Platform", Value: 320_000, Stage: entity.StageClosedWon, WinProbability: 100},
	}
	activities := []entity.Activity{
		{ID: "3", Title: "Discovery Call Scheduled"},
		{ID: "1", Title: "Product Demo Completed"},
	}
	return leads, opps, activities
}

func TestPipelineStats(t *testing.T) {
	ctx := context.Background()
	leads, opps, activities := statsFixtures()

	mockLeads := new(MockLeadRepository)
	mockOpps := new(MockOpportunityRepository)
	mockActivities := new(MockActivityRepository)

	mockLeads.On("List", ctx).Return(leads, nil)
	mockOpps.On("List", ctx).Return(opps, nil)
	mockActivities.On("ListRecent", ctx, 3).Return(activities, nil)

	uc := NewPipelineStatsUseCase(mockLeads, mockOpps, mockActivities)

	out, err := uc.Execute(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, out)

	assert.Equal(t, entity.DealValue(750_000), out.TotalPipelineValue)
	assert.Equal(t, 2, out.HotLeads)
	assert.Equal(t, 86, out.AvgWinRate) // (85+72+100)/3 rounded
	assert.Equal(t, 2, out.ActiveDeals)
	assert.Len(t, out.RecentActivities, 2)

	assert.Len(t, out.StageTotals, 4)
	assert.Equal(t, entity.StageDiscovery, out.StageTotals[0].Stage)
	assert.Equal(t, entity.DealValue(0), out.StageTotals[0].Value)
	assert.Equal(t, entity.DealValue(250_000), out.StageTotals[2].Value)
	assert.Equal(t, entity.DealValue(180_000), out.StageTotals[3].Value)
}

func TestPipelineStatsInsights(t *testing.T) {
	ctx := context.Background()
	leads, opps, activities := statsFixtures()

	mockLeads := new(MockLeadRepository)
	mockOpps := new(MockOpportunityRepository)
	mockActivities := new(MockActivityRepository)

	mockLeads.On("List", ctx).Return(leads, nil)
	mockOpps.On("List", ctx).Return(opps, nil)
	mockActivities.On("ListRecent", ctx, 3).Return(activities, nil)

	uc := NewPipelineStatsUseCase(mockLeads, mockOpps, mockActivities)

	out, err := uc.Execute(ctx)
	assert.NoError(t, err)
	assert.Len(t, out.Insights, 2)

	assert.Equal(t, "Follow up on 1 urgent opportunities", out.Insights[0].Title)
	assert.Equal(t, "high", out.Insights[0].Priority)
	assert.Equal(t, "follow-up", out.Insights[0].Type)

	assert.Equal(t, "Convert 2 hot leads to opportunities", out.Insights[1].Title)
	assert.Equal(t, "medium", out.Insights[1].Priority)
	assert.Equal(t, "opportunity", out.Insights[1].Type)
}

func TestPipelineStatsEmptyStore(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockOpps := new(MockOpportunityRepository)
	mockActivities := new(MockActivityRepository)

	mockLeads.On("List", ctx).Return([]entity.Lead{}, nil)
	mockOpps.On("List", ctx).Return([]entity.Opportunity{}, nil)
	mockActivities.On("ListRecent", ctx, 3).Return([]entity.Activity{}, nil)

	uc := NewPipelineStatsUseCase(mockLeads, mockOpps, mockActivities)

	out, err := uc.Execute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entity.DealValue(0), out.TotalPipelineValue)
	assert.Equal(t, 0, out.HotLeads)
	assert.Equal(t, 0, out.AvgWinRate)
	assert.Equal(t, 0, out.ActiveDeals)
	assert.Empty(t, out.Insights)
	assert.Len(t, out.StageTotals, 4)
}

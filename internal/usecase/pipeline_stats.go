package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

const recentActivityCount = 3

type StageTotal struct {
	Stage entity.Stage     `json:"stage"`
	Value entity.DealValue `json:"value"`
}

// Insight is a rule-generated dashboard card; there is no model behind it,
// just conditionals over the live data.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
}

type PipelineStatsOutput struct {
	TotalPipelineValue entity.DealValue  `json:"total_pipeline_value"`
	HotLeads           int               `json:"hot_leads"`
	AvgWinRate         int               `json:"avg_win_rate"`
	ActiveDeals        int               `json:"active_deals"`
	StageTotals        []StageTotal      `json:"stage_totals"`
	RecentActivities   []entity.Activity `json:"recent_activities"`
	Insights           []Insight         `json:"insights"`
}

type PipelineStatsUseCase struct {
	Leads         LeadRepositoryInterface
	Opportunities OpportunityRepositoryInterface
	Activities    ActivityRepositoryInterface
}

func NewPipelineStatsUseCase(leads LeadRepositoryInterface, opps OpportunityRepositoryInterface, activities ActivityRepositoryInterface) *PipelineStatsUseCase {
	return &PipelineStatsUseCase{Leads: leads, Opportunities: opps, Activities: activities}
}

func (uc *PipelineStatsUseCase) Execute(ctx context.Context) (*PipelineStatsOutput, error) {
	leads, err := uc.Leads.List(ctx)
	if err != nil {
		return nil, err
	}

	opps, err := uc.Opportunities.List(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.Activities.ListRecent(ctx, recentActivityCount)
	if err != nil {
		return nil, err
	}

	out := &PipelineStatsOutput{
		RecentActivities: recent,
		StageTotals:      make([]StageTotal, 0, len(entity.OpenStages)),
	}

	var probabilitySum int
	for _, opp := range opps {
		out.TotalPipelineValue += opp.Value
		probabilitySum += opp.WinProbability
		if !opp.Stage.Closed() {
			out.ActiveDeals++
		}
	}
	if len(opps) > 0 {
		out.AvgWinRate = int(math.Round(float64(probabilitySum) / float64(len(opps))))
	}

	for _, stage := range entity.OpenStages {
		total := StageTotal{Stage: stage}
		for _, opp := range opps {
			if opp.Stage == stage {
				total.Value += opp.Value
			}
		}
		out.StageTotals = append(out.StageTotals, total)
	}

	for _, lead := range leads {
		if lead.Status == entity.LeadStatusHot {
			out.HotLeads++
		}
	}

	out.Insights = buildInsights(leads, opps)

	return out, nil
}

// buildInsights mirrors the dashboard's rules: urgent deals first, then hot
// leads, at most two cards.
func buildInsights(leads []entity.Lead, opps []entity.Opportunity) []Insight {
	insights := []Insight{}

	urgent := []entity.Opportunity{}
	for _, opp := range opps {
		if opp.Urgent {
			urgent = append(urgent, opp)
		}
	}
	if len(urgent) > 0 {
		insights = append(insights, Insight{
			Title: fmt.Sprintf("Follow up on %d urgent opportunities", len(urgent)),
			Description: fmt.Sprintf("%s and %d other urgent deals need immediate attention.",
				urgent[0].Title, len(urgent)-1),
			Priority: "high",
			Type:     "follow-up",
		})
	}

	hot := 0
	for _, lead := range leads {
		if lead.Status == entity.LeadStatusHot {
			hot++
		}
	}
	if hot > 0 {
		insights = append(insights, Insight{
			Title:       fmt.Sprintf("Convert %d hot leads to opportunities", hot),
			Description: "These leads are showing strong buying signals and are ready for the next stage.",
			Priority:    "medium",
			Type:        "opportunity",
		})
	}

	if len(insights) > 2 {
		insights = insights[:2]
	}

	return insights
}

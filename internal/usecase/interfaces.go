package usecase

import (
	"context"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

type LeadRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
}

type OpportunityRepositoryInterface interface {
	Create(ctx context.Context, opp *entity.Opportunity) error
	List(ctx context.Context) ([]entity.Opportunity, error)
}

type ActivityRepositoryInterface interface {
	ListRecent(ctx context.Context, n int) ([]entity.Activity, error)
}

type SearchRepositoryInterface interface {
	GlobalSearch(ctx context.Context, term string) (entity.SearchResult, error)
}

package usecase

import (
	"context"
	"strings"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

// minQueryLength gates the search: queries below it never hit the store and
// come back as four empty groups.
const minQueryLength = 2

type GlobalSearchUseCase struct {
	Search SearchRepositoryInterface
}

func NewGlobalSearchUseCase(search SearchRepositoryInterface) *GlobalSearchUseCase {
	return &GlobalSearchUseCase{Search: search}
}

func (uc *GlobalSearchUseCase) Execute(ctx context.Context, query string) (entity.SearchResult, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if len(term) < minQueryLength {
		return entity.EmptySearchResult(), nil
	}

	return uc.Search.GlobalSearch(ctx, term)
}

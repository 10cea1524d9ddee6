package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

// MockSearchRepository
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) GlobalSearch(ctx context.Context, term string) (entity.SearchResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(entity.SearchResult), args.Error(1)
}

func TestGlobalSearchShortQuerySkipsStore(t *testing.T) {
	ctx := context.Background()
	mockSearch := new(MockSearchRepository)
	uc := NewGlobalSearchUseCase(mockSearch)

	for _, query := range []string{"", "a", " x ", "  "} {
		result, err := uc.Execute(ctx, query)
		assert.NoError(t, err)
		assert.NotNil(t, result.Leads)
		assert.NotNil(t, result.Opportunities)
		assert.NotNil(t, result.Accounts)
		assert.NotNil(t, result.Contacts)
		assert.Empty(t, result.Leads)
		assert.Empty(t, result.Opportunities)
		assert.Empty(t, result.Accounts)
		assert.Empty(t, result.Contacts)
	}

	mockSearch.AssertNotCalled(t, "GlobalSearch")
}

func TestGlobalSearchNormalizesQuery(t *testing.T) {
	ctx := context.Background()

	expected := entity.EmptySearchResult()
	expected.Leads = []entity.Lead{{ID: "1", Name: "Jennifer Wilson"}}

	mockSearch := new(MockSearchRepository)
	mockSearch.On("GlobalSearch", ctx, "jennifer").Return(expected, nil)

	uc := NewGlobalSearchUseCase(mockSearch)

	result, err := uc.Execute(ctx, "  JeNNifer  ")
	assert.NoError(t, err)
	assert.Len(t, result.Leads, 1)
	assert.Equal(t, "Jennifer Wilson", result.Leads[0].Name)

	mockSearch.AssertCalled(t, "GlobalSearch", ctx, "jennifer")
}

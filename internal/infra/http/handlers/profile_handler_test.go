package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
)

func newProfileRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := database.Open(database.MemoryDSN(strings.ReplaceAll(t.Name(), "/", "_")))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed test store: %v", err)
	}

	handler := NewProfileHandler(database.NewProfileRepository(db))

	r := chi.NewRouter()
	r.Get("/profile", handler.Get)
	r.Put("/profile", handler.Update)
	r.Put("/profile/widgets", handler.UpdateWidgets)
	return r
}

func TestProfileHandlerGet(t *testing.T) {
	router := newProfileRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var profile entity.UserProfile
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Sarah Johnson", profile.Name)
	assert.Len(t, profile.DashboardWidgets, 6)
}

func TestProfileHandlerUpdate(t *testing.T) {
	router := newProfileRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"quota_target": "$3M"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var profile entity.UserProfile
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "$3M", profile.QuotaTarget)
	assert.Equal(t, "Sarah Johnson", profile.Name)
}

func TestProfileHandlerUpdateWidgets(t *testing.T) {
	router := newProfileRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/profile/widgets", strings.NewReader(`{"widgets": ["win-rate"]}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var profile entity.UserProfile
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, []string{"win-rate"}, profile.DashboardWidgets)

	// the list itself is required
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/profile/widgets", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

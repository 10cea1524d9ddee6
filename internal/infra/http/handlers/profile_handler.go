package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
)

type ProfileHandler struct {
	Profiles *database.ProfileRepository
}

func NewProfileHandler(profiles *database.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	profile, err := h.Profiles.Update(r.Context(), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type updateWidgetsRequest struct {
	Widgets []string `json:"widgets"`
}

// UpdateWidgets replaces the enabled-widget list wholesale; toggling a single
// widget is the client's job.
func (h *ProfileHandler) UpdateWidgets(w http.ResponseWriter, r *http.Request) {
	var req updateWidgetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Widgets == nil {
		writeError(w, http.StatusBadRequest, "widgets is required")
		return
	}

	profile, err := h.Profiles.UpdateWidgets(r.Context(), req.Widgets)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
)

type OpportunityHandler struct {
	Opportunities *database.OpportunityRepository
	Activities    *database.ActivityRepository
}

func NewOpportunityHandler(opportunities *database.OpportunityRepository, activities *database.ActivityRepository) *OpportunityHandler {
	return &OpportunityHandler{Opportunities: opportunities, Activities: activities}
}

func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	opps, err := h.Opportunities.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, opps)
}

func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params entity.OpportunityParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	opp, err := entity.NewOpportunity(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Opportunities.Create(r.Context(), opp); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, opp)
}

func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	opp, err := h.Opportunities.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if opp == nil {
		writeError(w, http.StatusNotFound, "opportunity not found")
		return
	}
	writeJSON(w, http.StatusOK, opp)
}

func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.OpportunityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	opp, err := h.Opportunities.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if opp == nil {
		writeError(w, http.StatusNotFound, "opportunity not found")
		return
	}
	writeJSON(w, http.StatusOK, opp)
}

func (h *OpportunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Opportunities.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OpportunityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Activities.ListByOpportunity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/http/middleware"
	"github.com/joshdavidsjd/MobileRepCRM/internal/usecase"
)

type LeadHandler struct {
	Leads      *database.LeadRepository
	Activities *database.ActivityRepository
	ConvertUC  *usecase.ConvertLeadUseCase
}

func NewLeadHandler(leads *database.LeadRepository, activities *database.ActivityRepository, convertUC *usecase.ConvertLeadUseCase) *LeadHandler {
	return &LeadHandler{Leads: leads, Activities: activities, ConvertUC: convertUC}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params entity.LeadParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	lead, err := entity.NewLead(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Leads.Create(r.Context(), lead); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Leads.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if lead == nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.Leads.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if lead == nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete always answers 204: deleting a missing lead is a no-op by contract.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Activities.ListByLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConvertLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	opp, err := h.ConvertUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if errors.Is(err, usecase.ErrLeadNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordLeadConversion()
	writeJSON(w, http.StatusCreated, opp)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
)

type AccountHandler struct {
	Accounts      *database.AccountRepository
	Contacts      *database.ContactRepository
	Opportunities *database.OpportunityRepository
	Activities    *database.ActivityRepository
}

func NewAccountHandler(accounts *database.AccountRepository, contacts *database.ContactRepository, opportunities *database.OpportunityRepository, activities *database.ActivityRepository) *AccountHandler {
	return &AccountHandler{
		Accounts:      accounts,
		Contacts:      contacts,
		Opportunities: opportunities,
		Activities:    activities,
	}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Accounts.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params entity.AccountParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	account, err := entity.NewAccount(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Accounts.Create(r.Context(), account); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.Accounts.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.AccountPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	account, err := h.Accounts.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Delete cascades: the account's contacts and activities are removed with it.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Accounts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.ListByAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *AccountHandler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	opps, err := h.Opportunities.ListByAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, opps)
}

func (h *AccountHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Activities.ListByAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

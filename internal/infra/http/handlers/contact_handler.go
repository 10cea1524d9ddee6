package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/database"
)

type ContactHandler struct {
	Contacts   *database.ContactRepository
	Accounts   *database.AccountRepository
	Activities *database.ActivityRepository
}

func NewContactHandler(contacts *database.ContactRepository, accounts *database.AccountRepository, activities *database.ActivityRepository) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Accounts: accounts, Activities: activities}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// Create rejects contacts whose account does not exist; a contact with no
// owning account is a data-integrity violation the store must never hold.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params entity.ContactParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	contact, err := entity.NewContact(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.Accounts.FindByID(r.Context(), contact.AccountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if account == nil {
		writeError(w, http.StatusBadRequest, "account does not exist")
		return
	}

	if err := h.Contacts.Create(r.Context(), contact); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Contacts.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch entity.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	contact, err := h.Contacts.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contact == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Contacts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Activities.ListByContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

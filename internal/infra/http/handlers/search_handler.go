package handlers

import (
	"net/http"

	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/http/middleware"
	"github.com/joshdavidsjd/MobileRepCRM/internal/usecase"
)

type SearchHandler struct {
	SearchUC *usecase.GlobalSearchUseCase
}

func NewSearchHandler(searchUC *usecase.GlobalSearchUseCase) *SearchHandler {
	return &SearchHandler{SearchUC: searchUC}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.SearchUC.Execute(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordSearchQuery()
	writeJSON(w, http.StatusOK, result)
}

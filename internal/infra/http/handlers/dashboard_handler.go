package handlers

import (
	"net/http"

	"github.com/joshdavidsjd/MobileRepCRM/internal/usecase"
)

type DashboardHandler struct {
	StatsUC *usecase.PipelineStatsUseCase
}

func NewDashboardHandler(statsUC *usecase.PipelineStatsUseCase) *DashboardHandler {
	return &DashboardHandler{StatsUC: statsUC}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

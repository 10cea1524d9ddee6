package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/joshdavidsjd/MobileRepCRM/internal/infra/http/middleware"
	"github.com/joshdavidsjd/MobileRepCRM/internal/usecase"
)

type AssistantHandler struct {
	AssistantUC *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUC *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{AssistantUC: assistantUC}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	middleware.RecordAssistantMessage()
	writeJSON(w, http.StatusOK, chatResponse{Reply: h.AssistantUC.Reply(req.Message)})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
	"github.com/MKhiriev/go-mission-hub/models"
)

// chat relays a message to the assistant. Unlike the account endpoints it
// rejects bodies it cannot decode.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid chat request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidRequest}, http.StatusBadRequest)
		return
	}

	reply, err := h.services.ChatService.Ask(r.Context(), req.Message)
	if err != nil {
		status := statusFromError(err)
		switch status {
		case http.StatusBadRequest:
			utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidRequest, Message: err.Error()}, status)
		case http.StatusBadGateway:
			utils.WriteJSON(w, models.ErrorResponse{Error: msgAIServiceUnavailable}, status)
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}

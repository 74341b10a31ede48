package http

import (
	"net/http"

	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
	"github.com/MKhiriev/go-mission-hub/models"
)

// withChatRateLimit rejects chat requests beyond the configured rate with 429.
// Each relayed message costs an inference call, so the limit is shared by all
// clients.
func (h *Handler) withChatRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.chatLimiter != nil && !h.chatLimiter.Allow() {
			logger.FromRequest(r).Warn().Msg("chat rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			utils.WriteJSON(w, models.ErrorResponse{Error: msgTooManyRequests}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

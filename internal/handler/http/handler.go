package http

import (
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDs    *utils.UUIDGenerator
	chatLimiter *rate.Limiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-positive cfg.ChatRateLimit
// disables the chat rate limit.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}

	if cfg.ChatRateLimit > 0 {
		h.chatLimiter = rate.NewLimiter(rate.Limit(cfg.ChatRateLimit), max(cfg.ChatBurst, 1))
	}

	logger.Info().Msg("http handler created")
	return h
}

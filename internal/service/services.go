package service

import (
	"fmt"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/store"
	"github.com/MKhiriev/go-mission-hub/internal/validators"
)

type Services struct {
	AccountService AccountService
	ChatService    ChatService
	AppInfoService AppInfoService
}

// NewServices wires the server-side services. inference may be nil when no
// API key is configured.
func NewServices(storages *store.Storages, inference adapter.InferenceAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		AccountService: NewAccountService(storages.UserRepository, logger),
		ChatService:    NewChatService(inference, validators.NewChatValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}

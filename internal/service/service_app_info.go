package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

// appInfoService answers GET /api/version. The version is fixed at start-up.
type appInfoService struct {
	version string
}

// NewAppInfoService returns [ErrVersionIsNotSpecified] when cfg.Version is
// blank.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

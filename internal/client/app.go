package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/tui"
	"github.com/MKhiriev/go-mission-hub/models"
)

const versionCheckTimeout = 3 * time.Second

type App struct {
	server    adapter.ServerAdapter
	serverURL string
	assistant service.AssistantService
	opts      tui.Options
	logger    *logger.Logger
}

// NewApp wires the assistant widget. Without a server URL the widget answers
// with canned replies.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	var server adapter.ServerAdapter
	if cfg.ServerURL != "" {
		httpAdapter, err := adapter.NewHTTPServerAdapter(*cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create hub server adapter: %w", err)
		}
		server = httpAdapter
	}

	return &App{
		server:    server,
		serverURL: cfg.ServerURL,
		assistant: service.NewAssistantService(server),
		opts: tui.Options{
			ReplyDelay: cfg.ReplyDelay,
			BuildInfo:  buildInfo,
		},
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := a.opts
	opts.Status = connectionStatus(ctx, a.server, a.serverURL, a.logger)

	a.logger.Info().
		Bool("remote", a.assistant.Remote()).
		Str("status", opts.Status).
		Msg("starting assistant")

	return tui.New(a.assistant, opts, a.logger).Run(ctx)
}

// connectionStatus describes where replies come from. An unreachable server
// is reported but still used, so replies start working once it comes up.
func connectionStatus(ctx context.Context, server adapter.ServerAdapter, serverURL string, logger *logger.Logger) string {
	if server == nil {
		return "offline: canned replies"
	}

	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	version, err := server.Version(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("server", serverURL).Msg("hub server version check failed")
		return fmt.Sprintf("hub %s (unreachable)", serverURL)
	}

	return fmt.Sprintf("hub %s v%s", serverURL, strings.TrimPrefix(version, "v"))
}

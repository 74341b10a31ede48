package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
	"github.com/MKhiriev/go-mission-hub/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from cfg.ServerURL and configures the underlying
// HTTP client with it and the request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Chat implements [ServerAdapter]. It POSTs message to /api/chat and decodes
// the reply. Non-2xx answers are mapped by mapHTTPError, so a 429 yields
// [ErrTooManyRequests] and a 502 [ErrBadGateway].
func (h *httpServerAdapter) Chat(ctx context.Context, message string) (models.ChatReply, error) {
	var reply models.ChatReply

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChatRequest{Message: message}).
		SetResult(&reply).
		Post("/api/chat")
	if err != nil {
		return models.ChatReply{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("trace_id", resp.Header().Get(utils.TraceIDHeader)).
			Int("status", resp.StatusCode()).
			Msg("chat request rejected")
		return models.ChatReply{}, err
	}

	return reply, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the hub server is unavailable"
	}

	return err.Error()
}

func askErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, adapter.ErrBadRequest):
		return "The assistant did not accept this message"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Too many requests, try again in a moment"
	case errors.Is(err, adapter.ErrBadGateway):
		return "AI service unavailable"
	}
	return humanizeServerUnavailableError(err)
}

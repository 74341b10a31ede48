// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP transports of the mission hub.
//
// [InferenceAdapter] is used by the server to relay chat messages to a hosted
// text-generation model. [ServerAdapter] is used by the assistant client to
// talk to the mission hub itself.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mission-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// InferenceAdapter generates a completion for a prompt.
type InferenceAdapter interface {
	// Generate returns the model output for prompt. Transient failures are
	// retried internally; a final failure wraps [ErrInferenceUnavailable].
	Generate(ctx context.Context, prompt string) (string, error)
}

// ServerAdapter is the assistant client's view of the mission hub API.
type ServerAdapter interface {
	// Chat posts message to /api/chat and returns the assistant reply.
	Chat(ctx context.Context, message string) (models.ChatReply, error)

	// Version returns the server version from /api/version.
	Version(ctx context.Context) (string, error)
}

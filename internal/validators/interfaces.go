// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads that do
// carry rules.
//
// The account endpoints are deliberately lenient and are not validated here;
// the chat endpoint rejects empty or oversized messages before they reach the
// inference backend.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

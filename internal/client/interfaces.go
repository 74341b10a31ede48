// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable assistant application.
type Client interface {
	// Run shows the assistant and blocks until the user quits or the
	// process is interrupted.
	Run() error
}

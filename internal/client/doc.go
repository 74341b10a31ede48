// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the assistant client application runtime.
//
// It wires the hub server adapter, the assistant service and the terminal
// widget into a single process lifecycle.
package client

// Package server runs the mission hub HTTP server and its background workers,
// including startup, signal handling and graceful shutdown.
package server

package server

import "context"

// Server defines the lifecycle contract of the mission hub server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer() error

	// Run serves until ctx is cancelled and then shuts down gracefully.
	Run(ctx context.Context) error
}

// Package workers provides the background workers of the mission hub server
// and the Workers aggregate that runs them for the lifetime of a context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

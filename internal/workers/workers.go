package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. The warm-up worker needs both a
// positive interval and an inference adapter.
func NewWorkers(inference adapter.InferenceAdapter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.WarmupInterval > 0 && inference != nil {
		w.workers = append(w.workers, NewWarmupWorker(inference, cfg.WarmupInterval, logger))
	}

	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

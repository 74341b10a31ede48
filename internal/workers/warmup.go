package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
)

const warmupPrompt = "ping"

// WarmupWorker keeps the hosted model loaded by sending it a tiny prompt at
// a fixed interval, starting immediately.
type WarmupWorker struct {
	inference adapter.InferenceAdapter
	interval  time.Duration

	logger *logger.Logger
}

func NewWarmupWorker(inference adapter.InferenceAdapter, interval time.Duration, logger *logger.Logger) *WarmupWorker {
	return &WarmupWorker{
		inference: inference,
		interval:  interval,
		logger:    logger,
	}
}

func (w *WarmupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("warm-up worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warmUp(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("warm-up worker stopped")
			return
		case <-ticker.C:
			w.warmUp(ctx)
		}
	}
}

func (w *WarmupWorker) warmUp(ctx context.Context) {
	if _, err := w.inference.Generate(ctx, warmupPrompt); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn().Err(err).Str("func", "*WarmupWorker.warmUp").Msg("model warm-up failed")
		return
	}
	w.logger.Debug().Msg("model warm-up succeeded")
}

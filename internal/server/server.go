package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/handler"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/workers"
)

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	endpoints       []string
	shutdownTimeout time.Duration

	// ready receives the bound address once the listener is open.
	ready chan string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, backgroundWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	if backgroundWorkers == nil {
		backgroundWorkers = &workers.Workers{}
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg),
		workers:         backgroundWorkers,
		endpoints:       handlers.Endpoints(),
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan string, 1),
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("address", ln.Addr().String()).
		Strs("endpoints", s.endpoints).
		Msg("mission hub is listening")
	s.ready <- ln.Addr().String()

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(workersCtx)
		close(workersDone)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case err = <-serveErr:
		stopWorkers()
		<-workersDone
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err = s.httpServer.shutdown(shutdownCtx)
	stopWorkers()
	<-workersDone

	s.logger.Info().Msg("server shutdown gracefully")
	return err
}

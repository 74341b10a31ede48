package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/handler"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/server"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/store"
	"github.com/MKhiriev/go-mission-hub/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mission-hub")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(ctx); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	// without an API key the chat endpoint answers with the canned reply
	var inference adapter.InferenceAdapter
	if cfg.Adapter.APIKey != "" {
		inference = adapter.NewInferenceAdapter(cfg.Adapter, log)
	} else {
		log.Warn().Msg("no inference API key configured, chat replies are canned")
	}

	services, err := service.NewServices(storages, inference, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(inference, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

package main

import (
	"fmt"

	"github.com/MKhiriev/go-mission-hub/internal/client"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("mission-assistant").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("mission-assistant", cfg.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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

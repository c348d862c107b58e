package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/client"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/tui"
	"github.com/MKhiriev/go-nutri-track/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("nutri-track-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
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

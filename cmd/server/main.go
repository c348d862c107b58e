package main

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-nutri-track/internal/cache"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/handler"
	"github.com/MKhiriev/go-nutri-track/internal/inference"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/server"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()
	log := logger.NewLogger("nutri-track-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = appVersion()
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	resultCache, err := cache.NewCache(ctx, cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating inference cache")
	}
	defer resultCache.Close()

	provider := inference.NewOpenAIProvider(cfg.Inference, log)

	services, err := service.NewServices(storages, provider, resultCache, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// only the file driver needs the API to serve photos back
	var images store.BlobStorage
	if cfg.Storage.Blob.Driver == config.BlobDriverFile {
		images = storages.BlobStorage
	}

	handlers, err := handler.NewHandlers(services, images, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(resultCache, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// appVersion prefers the linker-injected version, then the module version
// recorded by the go tool.
func appVersion() string {
	if buildVersion != "" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

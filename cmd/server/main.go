package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/handler"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/server"
	"github.com/MKhiriev/go-foodmap/internal/service"
	"github.com/MKhiriev/go-foodmap/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("go-foodmap-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-foodmap-server", logger.WithLevel(cfg.App.LogLevel))
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("cache", cfg.Storage.Cache.RedisURL != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
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

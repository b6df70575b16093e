package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/handler"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/server"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("travel-journal-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New(os.Stdout, "travel-journal-server", cfg.App.LogLevel)

	// secrets (sign key, DSN, S3 keys) are never logged
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.DriverName()).
		Str("files_backend", cfg.Storage.Files.Backend).
		Str("public_base_url", cfg.Storage.Files.PublicBaseURL).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err := storages.Close(); err != nil {
		log.Error().Err(err).Msg("error closing storages")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}

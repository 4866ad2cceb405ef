package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/handler"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/server"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/store"
	"github.com/MKhiriev/go-wine-cellar/internal/workers"
	"github.com/MKhiriev/go-wine-cellar/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("wine-cellar-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("wine-cellar-server", cfg.App.LogLevel)
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New()

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, m, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

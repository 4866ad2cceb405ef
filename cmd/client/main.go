package main

import (
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/adapter"
	"github.com/MKhiriev/go-wine-cellar/internal/client"
	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("wine-cellar-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("wine-cellar-client", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	services := service.NewClientServices(serverAdapter, cfg.App, log)

	ui, err := tui.New(services, buildInfo, cfg.App.PageSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = client.NewApp(ui, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/store"
	"github.com/MKhiriev/go-wine-cellar/models"
)

// Services groups the server-side services handed to the transports.
type Services struct {
	WineService    WineService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The WineService is wrapped
// with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	wineService := NewWineValidationService(cfg.App).
		Wrap(NewWineService(storages.WineRepository, logger))

	return &Services{
		WineService:    wineService,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}

package service

import (
	"github.com/MKhiriev/go-wine-cellar/internal/adapter"
	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	CatalogService ClientCatalogService
}

// NewClientServices wires the client services. Writes are signed only when
// cfg carries a token sign key.
func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	var authService AuthService
	if cfg.TokenSignKey != "" {
		authService = NewAuthService(config.App{
			TokenSignKey:  cfg.TokenSignKey,
			TokenIssuer:   cfg.TokenIssuer,
			TokenDuration: cfg.TokenDuration,
		}, logger)
	}

	return &ClientServices{
		CatalogService: NewClientCatalogService(serverAdapter, authService, cfg.Operator, logger),
	}
}

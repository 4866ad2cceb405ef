// Package tui implements the terminal catalog browser of the wine cellar
// client on top of bubbletea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	catalog   service.ClientCatalogService
	buildInfo models.BuildInfo
	pageSize  int
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, pageSize int, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.CatalogService == nil {
		return nil, ErrNoCatalogService
	}
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	return &TUI{
		catalog:   services.CatalogService,
		buildInfo: buildInfo,
		pageSize:  pageSize,
		logger:    logger,
	}, nil
}

// Run shows the browser until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newCatalogModel(ctx, t.catalog, t.buildInfo, t.pageSize, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}

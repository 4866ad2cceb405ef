// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/models"
)

// CatalogStatsWorker periodically refreshes the catalog size gauge.
type CatalogStatsWorker struct {
	wineService service.WineService
	metrics     *metrics.Metrics
	interval    time.Duration
	logger      *logger.Logger
}

func NewCatalogStatsWorker(wineService service.WineService, m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *CatalogStatsWorker {
	return &CatalogStatsWorker{
		wineService: wineService,
		metrics:     m,
		interval:    interval,
		logger:      logger,
	}
}

// Run refreshes the gauge once immediately and then on every tick until ctx
// is cancelled.
func (w *CatalogStatsWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CatalogStatsWorker) refresh(ctx context.Context) {
	page, err := w.wineService.ListWines(ctx, nil, models.PageRequest{Page: 1, Size: 1})
	if err != nil {
		w.logger.Err(err).Str("func", "CatalogStatsWorker.refresh").Msg("error counting wines")
		return
	}
	w.metrics.CatalogSize.Set(float64(page.TotalElements))
	w.logger.Debug().Str("func", "CatalogStatsWorker.refresh").Int64("total", page.TotalElements).Msg("catalog size refreshed")
}

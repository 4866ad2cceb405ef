package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server. A non-positive
// stats interval disables the catalog stats worker.
func NewWorkers(services *service.Services, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.StatsInterval > 0 {
		w.workers = append(w.workers, NewCatalogStatsWorker(services.WineService, m, cfg.StatsInterval, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and waits for all of them to
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

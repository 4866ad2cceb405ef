package http

import (
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/models"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	limiter  *ipRateLimiter

	// authRequired guards catalog writes with a bearer token.
	authRequired   bool
	requestTimeout time.Duration

	// defaultPageSize is used when a listing names no pageSize.
	defaultPageSize int

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Writes require a token only when a
// token sign key is configured; a non-positive rate limit disables throttling.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		metrics:        m,
		authRequired:   cfg.App.TokenSignKey != "",
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	h.defaultPageSize = cfg.App.DefaultPageSize
	if h.defaultPageSize <= 0 {
		h.defaultPageSize = models.DefaultPageSize
	}
	if cfg.Server.RateLimit > 0 {
		h.limiter = newIPRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
	}

	return h
}

package grpc

import (
	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"github.com/MKhiriev/go-wine-cellar/models"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler. It implements
// [WineCatalogServer] on top of the service layer.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	metrics *metrics.Metrics

	// authRequired guards catalog writes with a bearer token.
	authRequired bool

	// defaultPageSize is used when a listing names no page size.
	defaultPageSize int

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Writes require a token only when a
// token sign key is configured.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		services:        services,
		metrics:         m,
		authRequired:    cfg.App.TokenSignKey != "",
		defaultPageSize: cfg.App.DefaultPageSize,
		logger:          logger,
	}
	if h.defaultPageSize <= 0 {
		h.defaultPageSize = models.DefaultPageSize
	}
	return h
}

// Register adds the WineCatalog service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterWineCatalogServer(s, h)
}

// ServerOptions returns the interceptor chain the server must be created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withMetrics, h.auth),
	}
}

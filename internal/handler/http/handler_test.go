package http

import (
	"testing"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/metrics"
	"github.com/MKhiriev/go-wine-cellar/internal/mock"
	"github.com/MKhiriev/go-wine-cellar/internal/service"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	wines   *mock.MockWineService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	metrics *metrics.Metrics
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		wines:   mock.NewMockWineService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		metrics: metrics.New(),
	}
	services := &service.Services{
		WineService:    deps.wines,
		AuthService:    deps.auth,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(services, deps.metrics, cfg, logger.Nop()), deps
}

func ptr[T any](v T) *T { return &v }

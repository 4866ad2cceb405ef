package service

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/models"
)

type appInfoService struct {
	buildInfo models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version. When APP_VERSION is not
// set the version linked into the binary is used instead.
func NewAppInfoService(cfg config.App, buildInfo models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version != "" {
		buildInfo.Version = cfg.Version
	}
	if buildInfo.Version == "" || buildInfo.Version == models.NotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}

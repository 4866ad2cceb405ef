package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// WineService is the record service of the catalog.
type WineService interface {
	// GetWine returns the wine with id or a *NotFoundError.
	GetWine(ctx context.Context, id uuid.UUID) (models.Wine, error)

	// ListWines returns one page of the wines matching criteria. A nil
	// criteria matches every wine; no match is an empty page, not an error.
	ListWines(ctx context.Context, criteria *models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error)

	// CreateWine stores a new wine and returns it with its assigned ID.
	CreateWine(ctx context.Context, request models.CreateWineRequest) (models.Wine, error)

	// UpdateWine applies the present fields of update to the stored wine and
	// returns the result.
	UpdateWine(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error)

	// DeleteWine removes the wine and returns the number of deleted records.
	DeleteWine(ctx context.Context, id uuid.UUID) (int64, error)
}

// WineServiceWrapper decorates a WineService with extra behavior such as
// validation.
type WineServiceWrapper interface {
	Wrap(WineService) WineService
}

// AuthService issues and verifies the tokens that guard catalog mutations.
type AuthService interface {
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

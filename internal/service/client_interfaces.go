package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// ClientCatalogService is the client-side view of the catalog used by the
// terminal browser. Mutations are signed with a token minted from the shared
// sign key when the client has one.
type ClientCatalogService interface {
	// Browse returns one page of the wines matching criteria.
	Browse(ctx context.Context, criteria models.SearchCriteria, pageRequest models.PageRequest) (models.PageResult[models.Wine], error)

	// Get returns a single wine or a *NotFoundError.
	Get(ctx context.Context, id uuid.UUID) (models.Wine, error)

	// Create stores a new wine on the server.
	Create(ctx context.Context, request models.CreateWineRequest) (models.Wine, error)

	// Update applies a partial update on the server.
	Update(ctx context.Context, id uuid.UUID, update models.WineUpdate) (models.Wine, error)

	// Delete removes a wine on the server.
	Delete(ctx context.Context, id uuid.UUID) error

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

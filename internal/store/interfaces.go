package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// WineRepository persists catalog records.
//
// Every backend honours the same contract: lookups of a missing identifier
// return [ErrWineNotFound], listings are ordered by the requested column with
// the identifier as a tie-breaker, and writes report the affected row count.
type WineRepository interface {
	// GetWineByID returns the record with the given identifier.
	GetWineByID(ctx context.Context, id uuid.UUID) (models.Wine, error)
	// SaveWine inserts wine under a freshly generated identifier and returns
	// the stored record.
	SaveWine(ctx context.Context, wine models.Wine) (models.Wine, error)
	// FindWines returns the requested page of the records matching predicate.
	FindWines(ctx context.Context, predicate query.Predicate, page query.PageQuery) (query.Page[models.Wine], error)
	// UpdateWine overwrites every mutable column of the record with wine.ID.
	UpdateWine(ctx context.Context, wine models.Wine) (int64, error)
	// DeleteWineByID removes the record and returns the number of deleted rows.
	DeleteWineByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// WineCache is a key/value cache of catalog records.
type WineCache interface {
	// Get returns the cached record; hit is false on a cache miss.
	Get(ctx context.Context, id uuid.UUID) (wine models.Wine, hit bool, err error)
	// Set stores wine for ttl.
	Set(ctx context.Context, wine models.Wine, ttl time.Duration) error
	// Delete drops the cached record.
	Delete(ctx context.Context, id uuid.UUID) error
}

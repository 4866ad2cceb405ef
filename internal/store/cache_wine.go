package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// cachedWineRepository is a read-through cache in front of another
// [WineRepository]. Single-record reads are served from the cache; writes go
// to the inner repository and drop the cached entry. Listings are never
// cached. Cache failures are logged and otherwise ignored.
type cachedWineRepository struct {
	inner WineRepository
	cache WineCache
	ttl   time.Duration
}

// NewCachedWineRepository wraps inner with cache. Entries live for ttl.
func NewCachedWineRepository(inner WineRepository, cache WineCache, ttl time.Duration) WineRepository {
	return &cachedWineRepository{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

type skipCacheKey struct{}

// SkipCache marks ctx so that reads through a cached repository go straight to
// the inner store and leave the cache untouched. Read-modify-write callers use
// it to load the current record rather than a cached snapshot.
func SkipCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipCacheKey{}, true)
}

func cacheSkipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipCacheKey{}).(bool)
	return skip
}

func (c *cachedWineRepository) GetWineByID(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	if cacheSkipped(ctx) {
		return c.inner.GetWineByID(ctx, id)
	}

	log := logger.FromContext(ctx)

	wine, hit, err := c.cache.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("func", "cachedWineRepository.GetWineByID").Str("id", id.String()).Msg("cache read failed")
	}
	if hit {
		return wine, nil
	}

	wine, err = c.inner.GetWineByID(ctx, id)
	if err != nil {
		return models.Wine{}, err
	}

	if err = c.cache.Set(ctx, wine, c.ttl); err != nil {
		log.Warn().Err(err).Str("func", "cachedWineRepository.GetWineByID").Str("id", id.String()).Msg("cache write failed")
	}

	return wine, nil
}

func (c *cachedWineRepository) SaveWine(ctx context.Context, wine models.Wine) (models.Wine, error) {
	return c.inner.SaveWine(ctx, wine)
}

func (c *cachedWineRepository) FindWines(ctx context.Context, predicate query.Predicate, page query.PageQuery) (query.Page[models.Wine], error) {
	return c.inner.FindWines(ctx, predicate, page)
}

func (c *cachedWineRepository) UpdateWine(ctx context.Context, wine models.Wine) (int64, error) {
	affected, err := c.inner.UpdateWine(ctx, wine)
	c.evict(ctx, wine.ID, "cachedWineRepository.UpdateWine")
	return affected, err
}

func (c *cachedWineRepository) DeleteWineByID(ctx context.Context, id uuid.UUID) (int64, error) {
	affected, err := c.inner.DeleteWineByID(ctx, id)
	c.evict(ctx, id, "cachedWineRepository.DeleteWineByID")
	return affected, err
}

func (c *cachedWineRepository) evict(ctx context.Context, id uuid.UUID, caller string) {
	if err := c.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", caller).Str("id", id.String()).Msg("cache eviction failed")
	}
}

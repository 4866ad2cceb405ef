package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

// memoryWineRepository keeps the catalog in a map guarded by a RWMutex.
// It evaluates predicates with [query.Predicate.Matches] and orders with
// [query.CompareWines], so it pages exactly like the SQL backend.
type memoryWineRepository struct {
	mu    sync.RWMutex
	wines map[uuid.UUID]models.Wine
	ids   *utils.UUIDGenerator
}

// NewMemoryWineRepository returns an empty in-memory [WineRepository].
func NewMemoryWineRepository() WineRepository {
	return &memoryWineRepository{
		wines: make(map[uuid.UUID]models.Wine),
		ids:   utils.NewUUIDGenerator(),
	}
}

func (m *memoryWineRepository) GetWineByID(ctx context.Context, id uuid.UUID) (models.Wine, error) {
	if err := ctx.Err(); err != nil {
		return models.Wine{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	wine, ok := m.wines[id]
	if !ok {
		return models.Wine{}, ErrWineNotFound
	}
	return wine, nil
}

func (m *memoryWineRepository) SaveWine(ctx context.Context, wine models.Wine) (models.Wine, error) {
	if err := ctx.Err(); err != nil {
		return models.Wine{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	wine.ID = m.ids.Generate()
	if _, taken := m.wines[wine.ID]; taken {
		return models.Wine{}, ErrWineConstraintViolation
	}
	m.wines[wine.ID] = wine

	return wine, nil
}

func (m *memoryWineRepository) FindWines(ctx context.Context, predicate query.Predicate, page query.PageQuery) (query.Page[models.Wine], error) {
	if err := ctx.Err(); err != nil {
		return query.Page[models.Wine]{}, err
	}

	m.mu.RLock()
	matched := make([]models.Wine, 0, len(m.wines))
	for _, wine := range m.wines {
		if predicate.Matches(wine) {
			matched = append(matched, wine)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, func(a, b models.Wine) int {
		c := query.CompareWines(a, b, page.Sort.Field)
		if page.Sort.Direction == models.SortDescending {
			return -c
		}
		return c
	})

	total := int64(len(matched))
	offset := min(page.Offset(), uint64(total))
	end := min(offset+page.Limit(), uint64(total))

	return query.NewPage(slices.Clone(matched[offset:end]), page, total), nil
}

func (m *memoryWineRepository) UpdateWine(ctx context.Context, wine models.Wine) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wines[wine.ID]; !ok {
		return 0, nil
	}
	m.wines[wine.ID] = wine

	return 1, nil
}

func (m *memoryWineRepository) DeleteWineByID(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wines[id]; !ok {
		return 0, nil
	}
	delete(m.wines, id)

	return 1, nil
}

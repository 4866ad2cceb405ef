package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	assert.IsType(t, &memoryWineRepository{}, s.WineRepository)
}

func TestNewStorages_SQLite(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "cellar.db")

	s, err := NewStorages(testContext(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := testContext()
	repo := s.WineRepository

	saved, err := repo.SaveWine(ctx, models.Wine{Name: "Tokaji 100% Aszú", Year: 2013, Color: "white", Score: 95})
	require.NoError(t, err)
	_, err = repo.SaveWine(ctx, models.Wine{Name: "Tokaji Furmint", Year: 2018, Color: "white", Score: 89})
	require.NoError(t, err)

	got, err := repo.GetWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	page := query.PageQuery{Index: 0, Size: 10, Sort: query.SortQuery{Field: query.FieldScore, Direction: models.SortDescending}}

	// a literal "%" in the criteria must not act as a wildcard
	found, err := repo.FindWines(ctx, query.Compose(&models.SearchCriteria{Name: utils.Ptr("100%")}), page)
	require.NoError(t, err)
	require.Len(t, found.Content, 1)
	assert.Equal(t, saved.ID, found.Content[0].ID)

	all, err := repo.FindWines(ctx, query.Compose(&models.SearchCriteria{Name: utils.Ptr("TOKAJI")}), page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.TotalElements)
	assert.Equal(t, 95.0, all.Content[0].Score)

	deleted, err := repo.DeleteWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.GetWineByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrWineNotFound)
}

func TestNewConnectSQLite_UnicodeCaseFolding(t *testing.T) {
	ctx := testContext()
	db, err := NewConnectSQLite(ctx, filepath.Join(t.TempDir(), "cellar.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	repo := NewWineRepository(db, logger.Nop())
	saved, err := repo.SaveWine(ctx, models.Wine{Name: "CHÂTEAU MARGAUX", Year: 2015, Color: "red", Score: 98})
	require.NoError(t, err)
	_, err = repo.SaveWine(ctx, models.Wine{Name: "Chateau Latour", Year: 2010, Color: "red", Score: 97})
	require.NoError(t, err)

	page := query.PageQuery{Index: 0, Size: 10, Sort: query.SortQuery{Field: query.FieldName, Direction: models.SortAscending}}

	found, err := repo.FindWines(ctx, query.Compose(&models.SearchCriteria{Name: utils.Ptr("château")}), page)
	require.NoError(t, err)
	require.Equal(t, int64(1), found.TotalElements)
	assert.Equal(t, saved.ID, found.Content[0].ID)

	// the in-memory store filters the same records identically
	memory := NewMemoryWineRepository()
	_, err = memory.SaveWine(ctx, saved)
	require.NoError(t, err)
	inMemory, err := memory.FindWines(ctx, query.Compose(&models.SearchCriteria{Name: utils.Ptr("château")}), page)
	require.NoError(t, err)
	assert.Equal(t, found.TotalElements, inMemory.TotalElements)
}

func TestNewStorages_RedisUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Storage{Cache: config.Cache{RedisAddress: "127.0.0.1:1", TTL: 1}}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

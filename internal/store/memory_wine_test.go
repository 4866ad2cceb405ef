package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/MKhiriev/go-wine-cellar/models"
)

func seedMemory(t *testing.T, repo WineRepository, wines ...models.Wine) []models.Wine {
	t.Helper()
	saved := make([]models.Wine, 0, len(wines))
	for _, w := range wines {
		s, err := repo.SaveWine(context.Background(), w)
		require.NoError(t, err)
		saved = append(saved, s)
	}
	return saved
}

func byName(p query.Page[models.Wine]) []string {
	names := make([]string, 0, len(p.Content))
	for _, w := range p.Content {
		names = append(names, w.Name)
	}
	return names
}

func TestMemoryWineRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWineRepository()

	saved, err := repo.SaveWine(ctx, models.Wine{Name: "Barolo", Year: 2016})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)

	got, err := repo.GetWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	saved.Score = 95
	affected, err := repo.UpdateWine(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err = repo.GetWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 95.0, got.Score)

	affected, err = repo.DeleteWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.DeleteWineByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	_, err = repo.GetWineByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrWineNotFound)

	affected, err = repo.UpdateWine(ctx, saved)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestMemoryWineRepository_FindWines(t *testing.T) {
	repo := NewMemoryWineRepository()
	seedMemory(t, repo,
		models.Wine{Name: "Amarone", Year: 2012, Color: "red", Score: 93},
		models.Wine{Name: "Chablis", Year: 2019, Color: "white", Score: 90},
		models.Wine{Name: "Barolo", Year: 2016, Color: "red", Score: 96},
		models.Wine{Name: "Cava", Year: 2020, Color: "white", Score: 85},
		models.Wine{Name: "Douro", Year: 2016, Color: "red", Score: 88},
	)

	sortBy := func(f query.Field, d models.SortDirection) query.SortQuery {
		return query.SortQuery{Field: f, Direction: d}
	}

	tests := []struct {
		name      string
		criteria  *models.SearchCriteria
		page      query.PageQuery
		want      []string
		wantTotal int64
		wantPages int
	}{
		{
			name:      "first page by name",
			page:      query.PageQuery{Index: 0, Size: 2, Sort: sortBy(query.FieldName, models.SortAscending)},
			want:      []string{"Amarone", "Barolo"},
			wantTotal: 5,
			wantPages: 3,
		},
		{
			name:      "last partial page",
			page:      query.PageQuery{Index: 2, Size: 2, Sort: sortBy(query.FieldName, models.SortAscending)},
			want:      []string{"Douro"},
			wantTotal: 5,
			wantPages: 3,
		},
		{
			name:      "past the end",
			page:      query.PageQuery{Index: 9, Size: 2, Sort: sortBy(query.FieldName, models.SortAscending)},
			want:      []string{},
			wantTotal: 5,
			wantPages: 3,
		},
		{
			name:      "score descending",
			page:      query.PageQuery{Index: 0, Size: 3, Sort: sortBy(query.FieldScore, models.SortDescending)},
			want:      []string{"Barolo", "Amarone", "Chablis"},
			wantTotal: 5,
			wantPages: 2,
		},
		{
			name:      "red wines from 2016",
			criteria:  &models.SearchCriteria{Color: utils.Ptr("RED"), Year: utils.Ptr(2016)},
			page:      query.PageQuery{Index: 0, Size: 10, Sort: sortBy(query.FieldName, models.SortAscending)},
			want:      []string{"Barolo", "Douro"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "score range",
			criteria:  &models.SearchCriteria{MinScore: utils.Ptr(88.0), MaxScore: utils.Ptr(93.0)},
			page:      query.PageQuery{Index: 0, Size: 10, Sort: sortBy(query.FieldScore, models.SortAscending)},
			want:      []string{"Douro", "Chablis", "Amarone"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "no match",
			criteria:  &models.SearchCriteria{Name: utils.Ptr("zinfandel")},
			page:      query.PageQuery{Index: 0, Size: 10, Sort: sortBy(query.FieldName, models.SortAscending)},
			want:      []string{},
			wantTotal: 0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindWines(context.Background(), query.Compose(tt.criteria), tt.page)
			require.NoError(t, err)

			assert.Equal(t, tt.want, byName(got))
			assert.Equal(t, tt.wantTotal, got.TotalElements)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.NotNil(t, got.Content)
		})
	}
}

func TestMemoryWineRepository_TiesBreakByID(t *testing.T) {
	repo := NewMemoryWineRepository()
	saved := seedMemory(t, repo,
		models.Wine{Name: "Same", Year: 2000},
		models.Wine{Name: "Same", Year: 2000},
		models.Wine{Name: "Same", Year: 2000},
	)

	page := query.PageQuery{Index: 0, Size: 3, Sort: query.SortQuery{Field: query.FieldYear, Direction: models.SortAscending}}

	first, err := repo.FindWines(context.Background(), query.Compose(nil), page)
	require.NoError(t, err)
	second, err := repo.FindWines(context.Background(), query.Compose(nil), page)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.ElementsMatch(t, saved, first.Content)
}

func TestMemoryWineRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryWineRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.SaveWine(ctx, models.Wine{Name: "late"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindWines(ctx, query.Compose(nil), query.PageQuery{Size: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryWineRepository_ConcurrentWrites(t *testing.T) {
	repo := NewMemoryWineRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.SaveWine(context.Background(), models.Wine{Name: fmt.Sprintf("wine-%02d", i)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	page, err := repo.FindWines(context.Background(), query.Compose(nil),
		query.PageQuery{Index: 0, Size: 100, Sort: query.SortQuery{Field: query.FieldName}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), page.TotalElements)
	assert.Equal(t, "wine-00", page.Content[0].Name)
}

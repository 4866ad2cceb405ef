package query

import (
	"testing"

	"github.com/MKhiriev/go-wine-cellar/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicate_ToSql(t *testing.T) {
	tests := []struct {
		name     string
		criteria *models.SearchCriteria
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "match all",
			criteria: nil,
			wantSQL:  "(1=1)",
			wantArgs: []any{},
		},
		{
			name:     "text clause is lower-cased and wrapped in wildcards",
			criteria: &models.SearchCriteria{Winery: ptr("Antinori")},
			wantSQL:  `(LOWER(winery) LIKE ? ESCAPE '\')`,
			wantArgs: []any{"%antinori%"},
		},
		{
			name:     "like metacharacters are escaped",
			criteria: &models.SearchCriteria{Name: ptr(`50%_a\b`)},
			wantSQL:  `(LOWER(name) LIKE ? ESCAPE '\')`,
			wantArgs: []any{`%50\%\_a\\b%`},
		},
		{
			name: "all clause kinds",
			criteria: &models.SearchCriteria{
				Color:      ptr("red"),
				Year:       ptr(2018),
				MinScore:   ptr(80.0),
				MaxAlcohol: ptr(14.0),
			},
			wantSQL:  `(LOWER(color) LIKE ? ESCAPE '\' AND year = ? AND score >= ? AND alcohol <= ?)`,
			wantArgs: []any{"%red%", 2018, 80.0, 14.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := Compose(tt.criteria).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPredicate_UsableAsWhere(t *testing.T) {
	p := Compose(&models.SearchCriteria{Country: ptr("France"), Year: ptr(2020)})

	sql, args, err := sq.Select("id").From("wines").
		Where(p).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, `SELECT id FROM wines WHERE (LOWER(country) LIKE $1 ESCAPE '\' AND year = $2)`, sql)
	assert.Equal(t, []any{"%france%", 2020}, args)
}

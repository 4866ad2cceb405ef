package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wine-cellar/internal/query"
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

const winesTable = "wines"

// wineColumns is query.WineColumns as plain column names, in scan order.
var wineColumns = func() []string {
	cols := make([]string, len(query.WineColumns))
	for i, f := range query.WineColumns {
		cols[i] = f.String()
	}
	return cols
}()

// wineValues returns the column values of w in wineColumns order.
func wineValues(w models.Wine) []any {
	return []any{
		w.ID, w.Name, w.Year, w.Color, w.State, w.Winery, w.Kind,
		w.Sugar, w.Alcohol, w.Country, w.Region, w.Score,
		w.Description, w.Picture,
	}
}

// wineScanTargets returns pointers into w in wineColumns order.
func wineScanTargets(w *models.Wine) []any {
	return []any{
		&w.ID, &w.Name, &w.Year, &w.Color, &w.State, &w.Winery, &w.Kind,
		&w.Sugar, &w.Alcohol, &w.Country, &w.Region, &w.Score,
		&w.Description, &w.Picture,
	}
}

func buildGetWineByIDQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	return b.Select(wineColumns...).
		From(winesTable).
		Where(sq.Eq{query.FieldID.String(): id}).
		ToSql()
}

func buildSaveWineQuery(b sq.StatementBuilderType, w models.Wine) (string, []any, error) {
	return b.Insert(winesTable).
		Columns(wineColumns...).
		Values(wineValues(w)...).
		ToSql()
}

func buildCountWinesQuery(b sq.StatementBuilderType, predicate query.Predicate) (string, []any, error) {
	sb := b.Select("COUNT(*)").From(winesTable)
	if !predicate.IsEmpty() {
		sb = sb.Where(predicate)
	}
	return sb.ToSql()
}

// buildFindWinesQuery selects one page of matching rows. The identifier is
// always the last ORDER BY key so that equal sort values page deterministically.
func buildFindWinesQuery(b sq.StatementBuilderType, predicate query.Predicate, page query.PageQuery) (string, []any, error) {
	direction := page.Sort.Direction.String()

	sb := b.Select(wineColumns...).From(winesTable)
	if !predicate.IsEmpty() {
		sb = sb.Where(predicate)
	}

	orderBy := []string{fmt.Sprintf("%s %s", page.Sort.Field, direction)}
	if page.Sort.Field != query.FieldID {
		orderBy = append(orderBy, fmt.Sprintf("%s %s", query.FieldID, direction))
	}

	return sb.OrderBy(orderBy...).
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
}

// buildUpdateWineQuery overwrites every mutable column. Columns are set one by
// one so they render in scan order.
func buildUpdateWineQuery(b sq.StatementBuilderType, w models.Wine) (string, []any, error) {
	values := wineValues(w)

	ub := b.Update(winesTable)
	for i, col := range wineColumns {
		if col == query.FieldID.String() {
			continue
		}
		ub = ub.Set(col, values[i])
	}

	return ub.Where(sq.Eq{query.FieldID.String(): w.ID}).ToSql()
}

func buildDeleteWineQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	return b.Delete(winesTable).
		Where(sq.Eq{query.FieldID.String(): id}).
		ToSql()
}

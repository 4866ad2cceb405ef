package query

import (
	"cmp"
	"strings"

	"github.com/MKhiriev/go-wine-cellar/models"
)

// Field is a column of the wines table.
type Field string

const (
	FieldID          Field = "id"
	FieldName        Field = "name"
	FieldYear        Field = "year"
	FieldColor       Field = "color"
	FieldState       Field = "state"
	FieldWinery      Field = "winery"
	FieldKind        Field = "kind"
	FieldSugar       Field = "sugar"
	FieldAlcohol     Field = "alcohol"
	FieldCountry     Field = "country"
	FieldRegion      Field = "region"
	FieldScore       Field = "score"
	FieldDescription Field = "description"
	FieldPicture     Field = "picture"
)

// WineColumns lists every column in the order rows are scanned.
var WineColumns = []Field{
	FieldID, FieldName, FieldYear, FieldColor, FieldState, FieldWinery, FieldKind,
	FieldSugar, FieldAlcohol, FieldCountry, FieldRegion, FieldScore,
	FieldDescription, FieldPicture,
}

var sortableFields = map[Field]struct{}{
	FieldName: {}, FieldYear: {}, FieldColor: {}, FieldState: {}, FieldWinery: {},
	FieldKind: {}, FieldSugar: {}, FieldAlcohol: {}, FieldCountry: {},
	FieldRegion: {}, FieldScore: {},
}

// ParseSortField maps a caller-supplied sort key to a sortable column.
func ParseSortField(name string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	_, ok := sortableFields[f]
	return f, ok
}

func (f Field) String() string {
	return string(f)
}

// textValue returns the value of a text column of w.
func textValue(w models.Wine, f Field) string {
	switch f {
	case FieldName:
		return w.Name
	case FieldColor:
		return w.Color
	case FieldState:
		return w.State
	case FieldWinery:
		return w.Winery
	case FieldKind:
		return w.Kind
	case FieldCountry:
		return w.Country
	case FieldRegion:
		return w.Region
	case FieldDescription:
		return w.Description
	case FieldPicture:
		return w.Picture
	}
	return ""
}

// numberValue returns the value of a numeric column of w.
func numberValue(w models.Wine, f Field) (float64, bool) {
	switch f {
	case FieldYear:
		return float64(w.Year), true
	case FieldSugar:
		return w.Sugar, true
	case FieldAlcohol:
		return w.Alcohol, true
	case FieldScore:
		return w.Score, true
	}
	return 0, false
}

// CompareWines orders a and b by field f, breaking ties by ID so that
// pagination over equal keys stays stable.
func CompareWines(a, b models.Wine, f Field) int {
	var c int
	if av, ok := numberValue(a, f); ok {
		bv, _ := numberValue(b, f)
		c = cmp.Compare(av, bv)
	} else {
		c = strings.Compare(textValue(a, f), textValue(b, f))
	}

	if c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

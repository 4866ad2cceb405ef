package query

import (
	"strings"

	"github.com/MKhiriev/go-wine-cellar/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Op is the comparison a [Clause] applies to a column.
type Op int

const (
	// OpContains matches when the lower-cased column contains the value.
	OpContains Op = iota
	// OpEqual matches on exact equality.
	OpEqual
	// OpGreaterOrEqual is an inclusive lower bound.
	OpGreaterOrEqual
	// OpLessOrEqual is an inclusive upper bound.
	OpLessOrEqual
)

func (o Op) String() string {
	switch o {
	case OpContains:
		return "contains"
	case OpEqual:
		return "eq"
	case OpGreaterOrEqual:
		return "gte"
	case OpLessOrEqual:
		return "lte"
	}
	return "unknown"
}

// Clause is a single condition of a [Predicate].
//
// Value holds a lower-cased string for OpContains, an int for the year
// equality and a float64 for the bounds.
type Clause struct {
	Field Field
	Op    Op
	Value any
}

// Predicate is a conjunction of clauses. The zero value has no clauses and
// matches every record.
type Predicate struct {
	clauses []Clause
}

// Compose builds the predicate for criteria. A nil criteria value, or one with
// every field absent, yields the match-all predicate. Blank text values are
// treated as absent.
func Compose(criteria *models.SearchCriteria) Predicate {
	if criteria == nil {
		return Predicate{}
	}

	clauses := make([]Clause, 0, 11)

	addText := func(f Field, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			return
		}
		clauses = append(clauses, Clause{Field: f, Op: OpContains, Value: Fold(*v)})
	}
	addBound := func(f Field, op Op, v *float64) {
		if v == nil {
			return
		}
		clauses = append(clauses, Clause{Field: f, Op: op, Value: *v})
	}

	addText(FieldName, criteria.Name)
	addText(FieldColor, criteria.Color)
	addText(FieldWinery, criteria.Winery)
	addText(FieldKind, criteria.Kind)
	addText(FieldCountry, criteria.Country)
	addText(FieldRegion, criteria.Region)

	if criteria.Year != nil {
		clauses = append(clauses, Clause{Field: FieldYear, Op: OpEqual, Value: *criteria.Year})
	}

	addBound(FieldScore, OpGreaterOrEqual, criteria.MinScore)
	addBound(FieldScore, OpLessOrEqual, criteria.MaxScore)
	addBound(FieldAlcohol, OpGreaterOrEqual, criteria.MinAlcohol)
	addBound(FieldAlcohol, OpLessOrEqual, criteria.MaxAlcohol)

	return Predicate{clauses: clauses}
}

// Clauses returns a copy of the predicate's clauses.
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	copy(out, p.clauses)
	return out
}

// IsEmpty reports whether p matches every record.
func (p Predicate) IsEmpty() bool {
	return len(p.clauses) == 0
}

// Matches evaluates p against a single record.
func (p Predicate) Matches(w models.Wine) bool {
	for _, c := range p.clauses {
		if !c.matches(w) {
			return false
		}
	}
	return true
}

func (c Clause) matches(w models.Wine) bool {
	switch c.Op {
	case OpContains:
		needle, _ := c.Value.(string)
		return strings.Contains(Fold(textValue(w, c.Field)), needle)
	case OpEqual:
		got, ok := numberValue(w, c.Field)
		if !ok {
			return textValue(w, c.Field) == c.Value
		}
		return got == toFloat(c.Value)
	case OpGreaterOrEqual:
		got, _ := numberValue(w, c.Field)
		return got >= toFloat(c.Value)
	case OpLessOrEqual:
		got, _ := numberValue(w, c.Field)
		return got <= toFloat(c.Value)
	}
	return false
}

// Fold lower-cases s over the full Unicode range. Text criteria and the
// columns they are matched against must both go through it. A Caser is
// stateful, so a fresh one is made per call.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ToSql renders p as a squirrel condition, so a Predicate can be passed
// straight to SelectBuilder.Where. The match-all predicate renders "(1=1)".
func (p Predicate) ToSql() (string, []any, error) {
	return p.Sqlizer().ToSql()
}

// Sqlizer returns p as a squirrel conjunction.
func (p Predicate) Sqlizer() sq.And {
	and := make(sq.And, 0, len(p.clauses))
	for _, c := range p.clauses {
		and = append(and, c.sqlizer())
	}
	return and
}

func (c Clause) sqlizer() sq.Sqlizer {
	column := c.Field.String()

	switch c.Op {
	case OpContains:
		return sq.Expr(
			fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column),
			"%"+likeEscaper.Replace(fmt.Sprint(c.Value))+"%",
		)
	case OpGreaterOrEqual:
		return sq.GtOrEq{column: c.Value}
	case OpLessOrEqual:
		return sq.LtOrEq{column: c.Value}
	default:
		return sq.Eq{column: c.Value}
	}
}

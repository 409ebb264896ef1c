// Package sqlquery translates compiled filters into parameterized SQL.
package sqlquery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivoronin/databoxes/internal/filter"
)

// Dialect describes the SQL differences between supported databases.
type Dialect interface {
	Name() string
	// Placeholder returns the bind parameter for the n-th argument (1-based).
	Placeholder(n int) string
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string           { return "sqlite" }
func (sqliteDialect) Placeholder(int) string { return "?" }

type postgresDialect struct{}

func (postgresDialect) Name() string             { return "postgres" }
func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

var (
	SQLite   Dialect = sqliteDialect{}
	Postgres Dialect = postgresDialect{}
)

// ListQuery describes one page of a listing.
type ListQuery struct {
	Table   string
	Columns []string // empty selects every column
	Where   filter.Predicate
	OrderBy string // optional key column for stable paging
	Take    int
	Skip    int
}

var comparisonSQL = map[filter.ComparisonOperator]string{
	filter.OpEquals:         "=",
	filter.OpNotEquals:      "<>",
	filter.OpLessThan:       "<",
	filter.OpLessOrEqual:    "<=",
	filter.OpGreaterThan:    ">",
	filter.OpGreaterOrEqual: ">=",
}

var likePatterns = map[filter.ComparisonOperator]string{
	filter.OpContains:   "%%%s%%",
	filter.OpStartsWith: "%s%%",
	filter.OpEndsWith:   "%%%s",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type builder struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

// Build renders q as a SELECT statement and its arguments.
func Build(q ListQuery, d Dialect) (string, []any, error) {
	b := &builder{d: d}

	b.sb.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		b.sb.WriteString("*")
	} else {
		for i, c := range q.Columns {
			if i > 0 {
				b.sb.WriteString(", ")
			}
			b.sb.WriteString(Ident(c))
		}
	}
	b.sb.WriteString(" FROM ")
	b.sb.WriteString(Ident(q.Table))

	if q.Where != nil {
		where, err := b.predicate(q.Where)
		if err != nil {
			return "", nil, err
		}
		b.sb.WriteString(" WHERE ")
		b.sb.WriteString(where)
	}
	if q.OrderBy != "" {
		b.sb.WriteString(" ORDER BY ")
		b.sb.WriteString(Ident(q.OrderBy))
	}
	b.sb.WriteString(" LIMIT ")
	b.sb.WriteString(b.bind(q.Take))
	b.sb.WriteString(" OFFSET ")
	b.sb.WriteString(b.bind(q.Skip))

	return b.sb.String(), b.args, nil
}

// Where renders only the condition for p, for callers composing their own
// statements. A nil predicate renders as an always-true condition.
func Where(p filter.Predicate, d Dialect) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil
	}
	b := &builder{d: d}
	s, err := b.predicate(p)
	if err != nil {
		return "", nil, err
	}
	return s, b.args, nil
}

func (b *builder) predicate(p filter.Predicate) (string, error) {
	switch n := p.(type) {
	case *filter.Comparison:
		return b.comparison(n)
	case *filter.Logical:
		joiner := " AND "
		if n.Operator == filter.Or {
			joiner = " OR "
		}
		parts := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			s, err := b.predicate(child)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "(" + strings.Join(parts, joiner) + ")", nil
	default:
		return "", fmt.Errorf("unsupported predicate %T", p)
	}
}

func (b *builder) comparison(c *filter.Comparison) (string, error) {
	col := Ident(c.Field)

	if op, ok := comparisonSQL[c.Operator]; ok {
		return col + " " + op + " " + b.bind(c.Value), nil
	}
	if pattern, ok := likePatterns[c.Operator]; ok {
		return col + " LIKE " + b.bind(fmt.Sprintf(pattern, likeEscaper.Replace(c.Value))) + ` ESCAPE '\'`, nil
	}

	switch c.Operator {
	case filter.OpIn, filter.OpNotIn:
		items := filter.ListItems(c.Value)
		holders := make([]string, len(items))
		for i, item := range items {
			holders[i] = b.bind(item)
		}
		op := " IN ("
		if c.Operator == filter.OpNotIn {
			op = " NOT IN ("
		}
		return col + op + strings.Join(holders, ", ") + ")", nil
	}
	return "", fmt.Errorf("unsupported operator %s", c.Operator)
}

// Ident quotes an identifier. Names reaching this point have already been
// checked against a schema.
func Ident(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ivoronin/databoxes/internal/filter"
)

// Explanation shows how a filter expression compiles.
type Explanation struct {
	Filter    string
	Tokens    []string
	Predicate filter.Predicate // nil matches everything
	SQL       string
	Args      []any
}

// FormatText prints the tokens, an indented predicate tree and the SQL
// condition.
func (e *Explanation) FormatText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Filter: %s\n", e.Filter)
	fmt.Fprintf(&sb, "Tokens: %s\n", strings.Join(e.Tokens, " | "))
	sb.WriteString("Predicate:\n")
	if e.Predicate == nil {
		sb.WriteString("  (match all)\n")
	} else {
		writeTree(&sb, e.Predicate, 1)
	}
	fmt.Fprintf(&sb, "SQL: %s\n", e.SQL)
	if len(e.Args) > 0 {
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = fmt.Sprintf("%q", fmt.Sprint(a))
		}
		fmt.Fprintf(&sb, "Args: %s\n", strings.Join(args, ", "))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeTree(sb *strings.Builder, p filter.Predicate, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := p.(type) {
	case *filter.Logical:
		sb.WriteString(indent + strings.ToUpper(n.Operator.String()) + "\n")
		for _, child := range n.Children {
			writeTree(sb, child, depth+1)
		}
	default:
		sb.WriteString(indent + p.String() + "\n")
	}
}

// FormatJSON returns the explanation as JSON.
func (e *Explanation) FormatJSON() ([]byte, error) {
	args := e.Args
	if args == nil {
		args = []any{}
	}
	return json.MarshalIndent(struct {
		Filter    string           `json:"filter"`
		Tokens    []string         `json:"tokens"`
		Predicate filter.Predicate `json:"predicate"`
		SQL       string           `json:"sql"`
		Args      []any            `json:"args"`
	}{e.Filter, e.Tokens, e.Predicate, e.SQL, args}, "", "  ")
}

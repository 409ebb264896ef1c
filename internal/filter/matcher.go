package filter

import "strings"

// operatorStrategy compares a record value against a literal.
type operatorStrategy func(value, literal string) bool

// operatorStrategies maps comparison operators to their in-memory semantics.
// Ordering operators compare strings lexicographically.
var operatorStrategies = map[ComparisonOperator]operatorStrategy{
	OpEquals:         func(v, l string) bool { return v == l },
	OpNotEquals:      func(v, l string) bool { return v != l },
	OpIn:             func(v, l string) bool { return inList(v, l) },
	OpNotIn:          func(v, l string) bool { return !inList(v, l) },
	OpLessThan:       func(v, l string) bool { return v < l },
	OpLessOrEqual:    func(v, l string) bool { return v <= l },
	OpGreaterThan:    func(v, l string) bool { return v > l },
	OpGreaterOrEqual: func(v, l string) bool { return v >= l },
	OpContains:       strings.Contains,
	OpStartsWith:     strings.HasPrefix,
	OpEndsWith:       strings.HasSuffix,
}

// ListItems splits the literal of an in/ni comparison into its items.
func ListItems(literal string) []string {
	return strings.Split(literal, ",")
}

func inList(v, literal string) bool {
	for _, item := range ListItems(literal) {
		if v == item {
			return true
		}
	}
	return false
}

// Match reports whether record satisfies p. A nil predicate matches every
// record; a field missing from record compares as the empty string.
func Match(p Predicate, record map[string]string) bool {
	switch n := p.(type) {
	case nil:
		return true
	case *Comparison:
		strategy, ok := operatorStrategies[n.Operator]
		if !ok {
			return false // Unknown operator
		}
		return strategy(record[n.Field], n.Value)
	case *Logical:
		for _, child := range n.Children {
			m := Match(child, record)
			if n.Operator == Or && m {
				return true
			}
			if n.Operator == And && !m {
				return false
			}
		}
		return n.Operator == And
	default:
		return false
	}
}

package filter

import "strings"

// ComparisonOperator is the canonical kind of a comparison.
type ComparisonOperator int

const (
	OpEquals ComparisonOperator = iota
	OpNotEquals
	OpIn
	OpNotIn
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains
	OpStartsWith
	OpEndsWith
)

// comparisonSpellings is indexed by ComparisonOperator; the order is also the
// order used when listing valid operators in errors.
var comparisonSpellings = [...]string{
	OpEquals:         "eq",
	OpNotEquals:      "ne",
	OpIn:             "in",
	OpNotIn:          "ni",
	OpLessThan:       "lt",
	OpLessOrEqual:    "le",
	OpGreaterThan:    "gt",
	OpGreaterOrEqual: "ge",
	OpContains:       "contains",
	OpStartsWith:     "startswith",
	OpEndsWith:       "endswith",
}

var comparisonOperators = func() map[string]ComparisonOperator {
	m := make(map[string]ComparisonOperator, len(comparisonSpellings))
	for op, s := range comparisonSpellings {
		m[s] = ComparisonOperator(op)
	}
	return m
}()

// ComparisonOperators returns every comparison operator in table order.
func ComparisonOperators() []ComparisonOperator {
	ops := make([]ComparisonOperator, len(comparisonSpellings))
	for i := range ops {
		ops[i] = ComparisonOperator(i)
	}
	return ops
}

// String returns the filter-language spelling of the operator.
func (op ComparisonOperator) String() string {
	if op < 0 || int(op) >= len(comparisonSpellings) {
		return "unknown"
	}
	return comparisonSpellings[op]
}

// LookupComparison maps a lower-cased spelling to its operator. Unknown
// spellings yield an UnknownOperator error listing the valid ones.
func LookupComparison(spelling string) (ComparisonOperator, error) {
	op, ok := comparisonOperators[spelling]
	if !ok {
		valid := append([]string(nil), comparisonSpellings[:]...)
		return 0, &Error{
			Kind:    UnknownOperator,
			Message: "unexpected operator: '" + spelling + "', expected one of [" + strings.Join(valid, ",") + "]",
			Found:   spelling,
			Valid:   valid,
		}
	}
	return op, nil
}

// LogicalOperator joins sibling predicates.
type LogicalOperator int

const (
	And LogicalOperator = iota
	Or
)

var logicalSpellings = [...]string{
	And: "and",
	Or:  "or",
}

// String returns the filter-language spelling of the operator.
func (op LogicalOperator) String() string {
	if op < 0 || int(op) >= len(logicalSpellings) {
		return "unknown"
	}
	return logicalSpellings[op]
}

// lookupLogical is a case-insensitive membership test; a miss is not an error.
func lookupLogical(token string) (LogicalOperator, bool) {
	lower := strings.ToLower(token)
	for op, s := range logicalSpellings {
		if s == lower {
			return LogicalOperator(op), true
		}
	}
	return 0, false
}

// Package filter compiles the textual filter language accepted by the listing
// endpoint into a storage-agnostic predicate tree.
package filter

import (
	"encoding/json"
	"strings"
)

// Predicate is a node of a compiled filter: either a *Comparison leaf or a
// *Logical node. A nil Predicate matches everything.
type Predicate interface {
	String() string
	predicate()
}

// Comparison represents a single leaf test: field operator value.
type Comparison struct {
	Field    string
	Operator ComparisonOperator
	Value    string // unquoted literal
}

// Logical combines two or more children with one logical operator.
type Logical struct {
	Operator LogicalOperator
	Children []Predicate
}

func (*Comparison) predicate() {}
func (*Logical) predicate()    {}

// String renders the comparison back into filter syntax.
func (c *Comparison) String() string {
	return c.Field + " " + c.Operator.String() + " '" + c.Value + "'"
}

// String renders the node back into filter syntax. Nested logical children
// are parenthesized so the output parses to the same tree.
func (l *Logical) String() string {
	parts := make([]string, 0, len(l.Children))
	for _, child := range l.Children {
		if _, ok := child.(*Logical); ok {
			parts = append(parts, "("+child.String()+")")
			continue
		}
		parts = append(parts, child.String())
	}
	return strings.Join(parts, " "+l.Operator.String()+" ")
}

// MarshalJSON encodes the leaf as {"field":..,"op":..,"value":..}.
func (c *Comparison) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field string `json:"field"`
		Op    string `json:"op"`
		Value string `json:"value"`
	}{c.Field, c.Operator.String(), c.Value})
}

// MarshalJSON encodes the node as {"and":[...]} or {"or":[...]}.
func (l *Logical) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]Predicate{l.Operator.String(): l.Children})
}

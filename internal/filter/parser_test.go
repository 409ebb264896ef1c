package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var idSchema = NewSchema(map[string]ValueType{"id": String})

var boxSchema = NewSchema(map[string]ValueType{
	"id":          String,
	"name":        String,
	"description": String,
})

func cmpEq(field string, op ComparisonOperator, value string) *Comparison {
	return &Comparison{Field: field, Operator: op, Value: value}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Predicate
	}{
		{"empty", "", nil},
		{"only spaces", "   ", nil},
		{"single comparison", "id eq 'abc'", cmpEq("id", OpEquals, "abc")},
		{"upper-case operator", "id EQ 'abc'", cmpEq("id", OpEquals, "abc")},
		{"empty literal", "id eq ''", cmpEq("id", OpEquals, "")},
		{"literal with spaces", "id eq 'a b  c'", cmpEq("id", OpEquals, "a b  c")},
		{"literal with parens", "id contains '(x)'", cmpEq("id", OpContains, "(x)")},
		{"extra spaces", "  id   ne   'x'  ", cmpEq("id", OpNotEquals, "x")},
		{
			"and chain",
			"id eq 'a' and id ne 'b'",
			&Logical{Operator: And, Children: []Predicate{
				cmpEq("id", OpEquals, "a"),
				cmpEq("id", OpNotEquals, "b"),
			}},
		},
		{
			"or chain of three",
			"id eq 'a' or id eq 'b' OR id eq 'c'",
			&Logical{Operator: Or, Children: []Predicate{
				cmpEq("id", OpEquals, "a"),
				cmpEq("id", OpEquals, "b"),
				cmpEq("id", OpEquals, "c"),
			}},
		},
		{
			"parenthesized group",
			"(id eq 'a' or id eq 'b') and id ne 'c'",
			&Logical{Operator: And, Children: []Predicate{
				&Logical{Operator: Or, Children: []Predicate{
					cmpEq("id", OpEquals, "a"),
					cmpEq("id", OpEquals, "b"),
				}},
				cmpEq("id", OpNotEquals, "c"),
			}},
		},
		{
			"group without spaces",
			"id eq 'a' and (id eq 'b' or id eq 'c')",
			&Logical{Operator: And, Children: []Predicate{
				cmpEq("id", OpEquals, "a"),
				&Logical{Operator: Or, Children: []Predicate{
					cmpEq("id", OpEquals, "b"),
					cmpEq("id", OpEquals, "c"),
				}},
			}},
		},
		{"redundant parens", "((id eq 'a'))", cmpEq("id", OpEquals, "a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, idSchema)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    ErrorKind
		wantMsg string
	}{
		{"mixed chain", "id eq 'a' and id ne 'b' or id eq 'c'", MismatchedLogicalOperator, "expected 'and'"},
		{"mixed chain or first", "id eq 'a' or id ne 'b' and id eq 'c'", MismatchedLogicalOperator, "expected 'or'"},
		{"unknown field", "foo eq 'x'", UnknownField, "[id]"},
		{"unquoted value", "id eq abc", InvalidLiteralValue, "abc"},
		{"quote inside bare word", "id eq x'y'", InvalidLiteralValue, "x'y'"},
		{"unknown operator", "id xx 'a'", UnknownOperator, "[eq,ne,in,ni,lt,le,gt,ge,contains,startswith,endswith]"},
		{"unterminated string", "id eq 'abc", UnterminatedString, "not finished"},
		{"missing operator", "id", UnexpectedEndOfInput, ""},
		{"missing literal", "id eq", UnexpectedEndOfInput, ""},
		{"missing closing paren", "(id eq 'a'", UnexpectedEndOfInput, ""},
		{"open paren only", "(", UnexpectedEndOfInput, ""},
		{"wrong closing token", "(id eq 'a' ]", UnexpectedToken, "expected: ')'"},
		{"dangling operator", "id eq 'a' and", MissingExpression, "after operator: 'and'"},
		{"empty group", "()", UnknownField, "unknown field: )"},
		{"trailing token", "id eq 'a' id", UnexpectedToken, "end of filter expression"},
		{"stray closing paren", "id eq 'a')", UnexpectedToken, "')'"},
		{"mismatch inside group", "(id eq 'a' and id eq 'b' or id eq 'c')", MismatchedLogicalOperator, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, idSchema)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want %s error", tt.input, got, tt.kind)
			}
			var ferr *Error
			if !errors.As(err, &ferr) {
				t.Fatalf("error %T is not *filter.Error: %v", err, err)
			}
			if ferr.Kind != tt.kind {
				t.Errorf("kind = %s, want %s (%v)", ferr.Kind, tt.kind, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, err := Parse("foo eq 'x'", idSchema)
	if !errors.Is(err, &Error{Kind: UnknownField}) {
		t.Fatalf("errors.Is(UnknownField) = false for %v", err)
	}
	var ferr *Error
	errors.As(err, &ferr)
	if diff := cmp.Diff([]string{"id"}, ferr.Valid); diff != "" {
		t.Errorf("Valid mismatch (-want +got):\n%s", diff)
	}

	_, err = Parse("id eq 'a' and id eq 'b' or id eq 'c'", idSchema)
	errors.As(err, &ferr)
	if ferr.Expected != "and" || ferr.Found != "or" {
		t.Errorf("Expected/Found = %q/%q, want and/or", ferr.Expected, ferr.Found)
	}

	_, err = Parse("id xx 'a'", idSchema)
	errors.As(err, &ferr)
	if len(ferr.Valid) != 11 {
		t.Errorf("got %d valid operators, want 11", len(ferr.Valid))
	}
}

func TestParseFieldTypes(t *testing.T) {
	got, err := Parse("name startswith 'box' and description contains 'cold'", boxSchema)
	if err != nil {
		t.Fatal(err)
	}
	want := &Logical{Operator: And, Children: []Predicate{
		cmpEq("name", OpStartsWith, "box"),
		cmpEq("description", OpContains, "cold"),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEveryOperator(t *testing.T) {
	for _, op := range ComparisonOperators() {
		t.Run(op.String(), func(t *testing.T) {
			got, err := Parse("id "+op.String()+" 'v'", idSchema)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(cmpEq("id", op, "v"), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	inputs := []string{
		"id eq 'abc'",
		"(id eq 'a' or id eq 'b') and id ne 'c'",
		"id in 'a,b' or (id startswith 'x' and id endswith 'y')",
	}
	for _, in := range inputs {
		first, err := Parse(in, idSchema)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Parse(in, idSchema)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Parse(%q) not idempotent (-first +second):\n%s", in, diff)
		}
	}
}

func TestPredicateStringRoundTrip(t *testing.T) {
	inputs := []string{
		"id eq 'abc'",
		"(id eq 'a' or id eq 'b') and id ne 'c'",
		"id gt 'a' and (id lt 'z' or id eq 'q') and id ni 'x,y'",
	}
	for _, in := range inputs {
		p, err := Parse(in, idSchema)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Parse(p.String(), idSchema)
		if err != nil {
			t.Fatalf("reparse %q: %v", p.String(), err)
		}
		if diff := cmp.Diff(p, again); diff != "" {
			t.Errorf("String() of %q does not round-trip (-want +got):\n%s", in, diff)
		}
	}
}

// A backslash has no effect yet, so it cannot escape a quote inside a literal.
func TestParseBackslashIsNotAnEscape(t *testing.T) {
	got, err := Parse(`id eq 'a\b'`, idSchema)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cmpEq("id", OpEquals, `a\b`), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := Parse(`id eq 'it\'s'`, idSchema); err == nil {
		t.Error(`expected an error: \' does not escape the quote`)
	}
}

package filter

import "testing"

func TestMatch(t *testing.T) {
	record := map[string]string{"id": "b7", "name": "cold box", "description": ""}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"empty filter matches", "", true},
		{"eq", "id eq 'b7'", true},
		{"eq miss", "id eq 'b8'", false},
		{"ne", "id ne 'b8'", true},
		{"in", "id in 'a1,b7'", true},
		{"in miss", "id in 'a1,b8'", false},
		{"ni", "id ni 'a1,b8'", true},
		{"lt", "id lt 'c'", true},
		{"le equal", "id le 'b7'", true},
		{"gt", "id gt 'b'", true},
		{"ge miss", "id ge 'c'", false},
		{"contains", "name contains 'old'", true},
		{"startswith", "name startswith 'cold'", true},
		{"endswith miss", "name endswith 'cold'", false},
		{"empty description", "description eq ''", true},
		{"and all true", "id eq 'b7' and name contains 'box'", true},
		{"and one false", "id eq 'b7' and name contains 'crate'", false},
		{"or one true", "id eq 'x' or name contains 'box'", true},
		{"or none true", "id eq 'x' or name contains 'crate'", false},
		{"nested", "(id eq 'x' or id eq 'b7') and name startswith 'cold'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.expr, boxSchema)
			if err != nil {
				t.Fatal(err)
			}
			if got := Match(p, record); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestMatchMissingFieldIsEmpty(t *testing.T) {
	p := &Comparison{Field: "name", Operator: OpEquals, Value: ""}
	if !Match(p, map[string]string{"id": "1"}) {
		t.Error("missing field should compare as empty string")
	}
}

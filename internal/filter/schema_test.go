package filter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaFieldsSorted(t *testing.T) {
	if diff := cmp.Diff([]string{"description", "id", "name"}, boxSchema.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField(t *testing.T) {
	if got, err := boxSchema.ValidateField("name"); err != nil || got != "name" {
		t.Errorf("ValidateField(name) = %q, %v", got, err)
	}

	_, err := boxSchema.ValidateField("owner")
	var ferr *Error
	if !errors.As(err, &ferr) || ferr.Kind != UnknownField {
		t.Fatalf("ValidateField(owner) error = %v, want UnknownField", err)
	}
	if ferr.Error() != "unknown field: owner. Possible values are: [description,id,name]" {
		t.Errorf("message = %q", ferr.Error())
	}
}

func TestValidateLiteral(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"'abc'", "abc", false},
		{"''", "", false},
		{"'a'b'", "a'b", false},
		{"'", "", true},
		{"abc", "", true},
		{"'abc", "", true},
		{"abc'", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := idSchema.ValidateLiteral(tt.raw, String)
		if tt.wantErr {
			if !errors.Is(err, &Error{Kind: InvalidLiteralValue}) {
				t.Errorf("ValidateLiteral(%q) error = %v, want InvalidLiteralValue", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ValidateLiteral(%q) = %q, %v; want %q", tt.raw, got, err, tt.want)
		}
	}
}

func TestValidateLiteralUnknownTypeFailsClosed(t *testing.T) {
	_, err := idSchema.ValidateLiteral("'abc'", ValueType(99))
	if !errors.Is(err, &Error{Kind: InvalidLiteralValue}) {
		t.Errorf("error = %v, want InvalidLiteralValue", err)
	}
}

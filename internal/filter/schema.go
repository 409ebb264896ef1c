package filter

import (
	"sort"
	"strings"
)

// ValueType is the type of a filterable field.
type ValueType int

const (
	String ValueType = iota
)

func (t ValueType) String() string {
	switch t {
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// literalValidators holds one validation function per value type. Adding a
// type means adding an entry here; the grammar does not change.
var literalValidators = map[ValueType]func(raw string) (string, error){
	String: validateString,
}

// Schema maps selectable field names to their value types. It is immutable
// once built and safe for concurrent use.
type Schema struct {
	fields map[string]ValueType
	names  []string
}

// NewSchema builds a Schema from a field → type mapping.
func NewSchema(fields map[string]ValueType) *Schema {
	s := &Schema{
		fields: make(map[string]ValueType, len(fields)),
		names:  make([]string, 0, len(fields)),
	}
	for name, typ := range fields {
		s.fields[name] = typ
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Fields returns the field names in sorted order.
func (s *Schema) Fields() []string {
	return append([]string(nil), s.names...)
}

// Type returns the value type of a field.
func (s *Schema) Type(name string) (ValueType, bool) {
	t, ok := s.fields[name]
	return t, ok
}

// ValidateField checks that name is a selectable field.
func (s *Schema) ValidateField(name string) (string, error) {
	if _, ok := s.fields[name]; !ok {
		return "", &Error{
			Kind:    UnknownField,
			Message: "unknown field: " + name + ". Possible values are: [" + strings.Join(s.names, ",") + "]",
			Found:   name,
			Valid:   s.Fields(),
		}
	}
	return name, nil
}

// ValidateLiteral checks a raw literal token against typ and returns its value.
func (s *Schema) ValidateLiteral(raw string, typ ValueType) (string, error) {
	validate, ok := literalValidators[typ]
	if !ok {
		return "", &Error{
			Kind:    InvalidLiteralValue,
			Message: "unsupported value type " + typ.String() + " for value: " + raw,
			Found:   raw,
		}
	}
	return validate(raw)
}

func validateString(raw string) (string, error) {
	if len(raw) < 2 || !strings.HasPrefix(raw, "'") || !strings.HasSuffix(raw, "'") {
		return "", &Error{
			Kind:    InvalidLiteralValue,
			Message: "invalid string value: " + raw,
			Found:   raw,
		}
	}
	return raw[1 : len(raw)-1], nil
}

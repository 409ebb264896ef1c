package filter

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// selectExpr is the root of the projection grammar: comma-separated fields.
type selectExpr struct {
	Fields []string `parser:"@Field ( ',' @Field )*"`
}

var selectLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Field", Pattern: `[^,\s]+`},
})

var selectParser = participle.MustBuild[selectExpr](
	participle.Lexer(selectLexer),
	participle.Elide("Whitespace"),
)

// ParseSelect parses a projection list like "id,name". Every field must be in
// schema. Duplicates are dropped, order is kept. An empty list yields nil,
// meaning all fields.
func ParseSelect(list string, schema *Schema) ([]string, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, nil
	}

	ast, err := selectParser.ParseString("", list)
	if err != nil {
		return nil, &Error{
			Kind:     UnexpectedToken,
			Message:  "invalid select " + quote(list) + ": " + err.Error(),
			Expected: "field",
		}
	}

	seen := make(map[string]bool, len(ast.Fields))
	fields := make([]string, 0, len(ast.Fields))
	for _, f := range ast.Fields {
		field, err := schema.ValidateField(f)
		if err != nil {
			return nil, err
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		fields = append(fields, field)
	}
	return fields, nil
}

func quote(s string) string {
	return "'" + s + "'"
}

package filter

import (
	"strings"
)

// Parse compiles a filter expression such as
//
//	(id eq 'a' or id eq 'b') and name startswith 'box'
//
// against schema. An empty expression yields a nil Predicate, which matches
// everything. The first error aborts parsing and is always a *Error.
func Parse(expr string, schema *Schema) (Predicate, error) {
	p := &parser{cur: newCursor(expr), schema: schema}
	pred, err := p.parseFilter()
	if err != nil {
		return nil, err
	}
	if tok, ok, err := p.cur.next(false); err != nil {
		return nil, err
	} else if ok {
		return nil, &Error{
			Kind:     UnexpectedToken,
			Message:  "unexpected token: '" + tok + "', expected end of filter expression",
			Expected: "end of filter expression",
			Found:    tok,
		}
	}
	return pred, nil
}

type parser struct {
	cur    *cursor
	schema *Schema
}

// parseFilter parses expression (logicalOp expression)* where every
// logicalOp at this level is the same operator.
func (p *parser) parseFilter() (Predicate, error) {
	first, err := p.parseExpression()
	if err != nil || first == nil {
		return nil, err
	}

	chain, found, err := p.peekLogical()
	if err != nil || !found {
		return first, err
	}

	children := []Predicate{first}
	for {
		p.cur.next(false) // consume the operator; it is cached, so this cannot fail

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, &Error{
				Kind:    MissingExpression,
				Message: "expression expected after operator: '" + chain.String() + "'",
			}
		}
		children = append(children, expr)

		op, found, err := p.peekLogical()
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		if op != chain {
			return nil, &Error{
				Kind:     MismatchedLogicalOperator,
				Message:  "unexpected operator: '" + op.String() + "', expected '" + chain.String() + "'",
				Expected: chain.String(),
				Found:    op.String(),
			}
		}
	}

	return &Logical{Operator: chain, Children: children}, nil
}

// peekLogical looks at the next token without consuming it and reports
// whether it is a logical operator.
func (p *parser) peekLogical() (LogicalOperator, bool, error) {
	tok, ok, err := p.cur.next(true)
	if err != nil || !ok {
		return 0, false, err
	}
	op, found := lookupLogical(tok)
	return op, found, nil
}

// parseExpression parses '(' filter ')' or a comparison. It returns a nil
// Predicate only when the input is exhausted.
func (p *parser) parseExpression() (Predicate, error) {
	tok, ok, err := p.cur.next(false)
	if err != nil || !ok {
		return nil, err
	}

	if tok == "(" {
		nested, err := p.parseFilter()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return nested, nil
	}

	return p.parseComparison(tok)
}

// parseComparison parses the rest of field operator literal, where field
// has already been read.
func (p *parser) parseComparison(field string) (Predicate, error) {
	field, err := p.schema.ValidateField(field)
	if err != nil {
		return nil, err
	}
	typ, _ := p.schema.Type(field)

	tok, err := p.cur.require()
	if err != nil {
		return nil, err
	}
	op, err := LookupComparison(strings.ToLower(tok))
	if err != nil {
		return nil, err
	}

	raw, err := p.cur.require()
	if err != nil {
		return nil, err
	}
	value, err := p.schema.ValidateLiteral(raw, typ)
	if err != nil {
		return nil, err
	}

	return &Comparison{Field: field, Operator: op, Value: value}, nil
}

// expect consumes the next token and checks it equals want.
func (p *parser) expect(want string) error {
	tok, err := p.cur.require()
	if err != nil {
		return err
	}
	if !strings.EqualFold(tok, want) {
		return &Error{
			Kind:     UnexpectedToken,
			Message:  "unexpected token: '" + tok + "', expected: '" + want + "'",
			Expected: want,
			Found:    tok,
		}
	}
	return nil
}

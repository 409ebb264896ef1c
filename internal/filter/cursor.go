package filter

// cursor gives the parser one token of lookahead over a tokenizer.
//
// Lookahead is requested on the call that returns the token: next(true)
// returns a token and also keeps it, so the following call returns it again.
type cursor struct {
	tokens *tokenizer
	cached string
	full   bool
}

func newCursor(input string) *cursor {
	return &cursor{tokens: newTokenizer(input)}
}

// next returns the next token, or ok == false at end of input.
func (c *cursor) next(peek bool) (tok string, ok bool, err error) {
	if c.full {
		tok, c.full = c.cached, false
	} else {
		tok, ok, err = c.tokens.next()
		if err != nil || !ok {
			return "", false, err
		}
	}
	if peek {
		c.cached, c.full = tok, true
	}
	return tok, true, nil
}

// require returns the next token or UnexpectedEndOfInput.
func (c *cursor) require() (string, error) {
	tok, ok, err := c.next(false)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errEndOfInput()
	}
	return tok, nil
}

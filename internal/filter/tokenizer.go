package filter

// tokenizer scans a filter string one token at a time. Tokens are slices of
// the input; their kind is decided by the parser from context.
type tokenizer struct {
	input    string
	pos      int  // next byte to scan
	start    int  // start of the pending token
	inString bool // inside a '...' literal
	pending  []string
}

func newTokenizer(input string) *tokenizer {
	return &tokenizer{input: input}
}

// next returns the next token. ok is false once the input is exhausted.
func (t *tokenizer) next() (tok string, ok bool, err error) {
	for len(t.pending) == 0 {
		if t.pos >= len(t.input) {
			return t.finish()
		}
		t.scan(t.input[t.pos])
		t.pos++
	}
	tok, t.pending = t.pending[0], t.pending[1:]
	return tok, true, nil
}

// scan consumes the byte at t.pos, queueing any tokens it completes.
func (t *tokenizer) scan(c byte) {
	if t.inString {
		if c == '\'' {
			t.emit(t.input[t.start : t.pos+1])
			t.start = t.pos + 1
			t.inString = false
		}
		return
	}

	switch c {
	case ' ':
		t.flush()
		t.start = t.pos + 1
	case '(', ')', '[', ']':
		t.flush()
		t.emit(t.input[t.pos : t.pos+1])
		t.start = t.pos + 1
	case '\\':
		// TODO: escape the following character so literals can contain quotes.
	case '\'':
		t.inString = true
	}
}

func (t *tokenizer) finish() (string, bool, error) {
	if t.inString {
		t.inString = false
		t.start = len(t.input)
		return "", false, &Error{Kind: UnterminatedString, Message: "unexpected end of filter expression, string is not finished"}
	}
	if t.start < len(t.input) {
		tok := t.input[t.start:]
		t.start = len(t.input)
		return tok, true, nil
	}
	return "", false, nil
}

// flush queues the bare word between start and pos, if any.
func (t *tokenizer) flush() {
	if t.start < t.pos {
		t.emit(t.input[t.start:t.pos])
	}
}

func (t *tokenizer) emit(tok string) {
	t.pending = append(t.pending, tok)
}

// Tokenize scans the whole input and returns its tokens in order.
func Tokenize(input string) ([]string, error) {
	t := newTokenizer(input)
	var toks []string
	for {
		tok, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

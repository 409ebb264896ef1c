package filter

import "testing"

func TestCursorPeekReplaysToken(t *testing.T) {
	c := newCursor("a b c")

	steps := []struct {
		peek   bool
		want   string
		wantOK bool
	}{
		{true, "a", true},  // peeked: replayed on the next call
		{false, "a", true}, // replay clears the cache
		{false, "b", true},
		{true, "c", true},
		{true, "c", true}, // peeking a replayed token keeps it cached
		{false, "c", true},
		{false, "", false},
		{true, "", false},
	}
	for i, s := range steps {
		got, ok, err := c.next(s.peek)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got != s.want || ok != s.wantOK {
			t.Errorf("step %d: next(%v) = %q, %v; want %q, %v", i, s.peek, got, ok, s.want, s.wantOK)
		}
	}
}

func TestCursorRequire(t *testing.T) {
	c := newCursor("x")
	if tok, err := c.require(); err != nil || tok != "x" {
		t.Fatalf("require() = %q, %v", tok, err)
	}
	_, err := c.require()
	if ferr, ok := err.(*Error); !ok || ferr.Kind != UnexpectedEndOfInput {
		t.Errorf("require() at end = %v, want UnexpectedEndOfInput", err)
	}
}

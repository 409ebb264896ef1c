// Package pagination reads take/skip query parameters.
package pagination

import (
	"strconv"
	"strings"
)

const (
	DefaultTake = 100
	MaxTake     = 100
)

// Options controls how a raw integer parameter is interpreted.
// Nil bounds are not enforced.
type Options struct {
	Default int
	Min     *int
	Max     *int
}

// ParseInt parses raw as a base-10 integer. Absent or non-numeric input
// yields the default; parsed values are clamped to the configured bounds.
func ParseInt(raw string, opts Options) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return opts.Default
	}
	if opts.Min != nil && n < *opts.Min {
		return *opts.Min
	}
	if opts.Max != nil && n > *opts.Max {
		return *opts.Max
	}
	return n
}

func bound(n int) *int { return &n }

var (
	takeOptions = Options{Default: DefaultTake, Min: bound(0), Max: bound(MaxTake)}
	skipOptions = Options{Default: 0, Min: bound(0)}
)

// Take returns the page size: default 100, clamped to [0, 100].
func Take(raw string) int {
	return ParseInt(raw, takeOptions)
}

// Skip returns the offset: default 0, never negative.
func Skip(raw string) int {
	return ParseInt(raw, skipOptions)
}

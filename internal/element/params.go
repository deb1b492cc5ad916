package element

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Params reads optional document constructor parameters positionally.
// Documents from any era may truncate the list or carry legacy encodings, so
// every accessor falls back instead of failing.
type Params []cty.Value

// Direction reads a direction token at position i, accepting legacy
// encodings.
func (p Params) Direction(i int, fallback Direction) Direction {
	s, ok := p.string(i)
	if !ok {
		return fallback
	}
	if d, ok := NormalizeDirection(s); ok {
		return d
	}
	return fallback
}

// Int reads a whole number at position i.
func (p Params) Int(i, fallback int) int {
	if i < 0 || i >= len(p) {
		return fallback
	}
	var n int
	if err := gocty.FromCtyValue(p[i], &n); err != nil {
		return fallback
	}
	return n
}

// String reads a string at position i.
func (p Params) String(i int, fallback string) string {
	if s, ok := p.string(i); ok {
		return s
	}
	return fallback
}

func (p Params) string(i int) (string, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	v := p[i]
	if v == cty.NilVal || v.IsNull() || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

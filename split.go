package pystr

import (
	"fmt"
	"strings"

	"github.com/charlievieth/pystr/internal/bytealg"
)

// A View is the byte range [start, end) of the Str it was split from.
//
// A View refers to the memory of its source and keeps it reachable, which is
// always safe since a Str never changes. Holding a short View of a very
// large Str keeps the large Str alive; use v.Str().Clone() to detach it.
type View struct {
	src        Str
	start, end int
}

// Str returns the bytes of v.
func (v View) Str() Str { return v.src[v.start:v.end] }

// String returns the bytes of v as a string.
func (v View) String() string { return string(v.src[v.start:v.end]) }

// Len returns the number of bytes in v.
func (v View) Len() int { return v.end - v.start }

// Span returns the byte range of v within its source.
func (v View) Span() (start, end int) { return v.start, v.end }

// Source returns the Str v was derived from.
func (v View) Source() Str { return v.src }

// Split splits s around each occurrence of the byte sep. If sep occurs k
// times the result always has k+1 views: empty views are returned for
// leading, trailing and adjacent separators.
//
// Joining the result with string(sep) reproduces s.
func (s Str) Split(sep byte) []View {
	views := make([]View, 0, bytealg.CountByte(string(s), sep)+1)
	start := 0
	for {
		i := strings.IndexByte(string(s[start:]), sep)
		if i < 0 {
			break
		}
		views = append(views, View{src: s, start: start, end: start + i})
		start += i + 1
	}
	return append(views, View{src: s, start: start, end: len(s)})
}

// Fields splits s around runs of whitespace (' ', '\t', '\n' and '\r'),
// this is Python's str.split() with no arguments. Leading and trailing
// whitespace is discarded and no empty views are returned, so Fields of an
// empty or all whitespace Str is empty.
func (s Str) Fields() []View {
	var views []View
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			break
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		views = append(views, View{src: s, start: start, end: i})
	}
	return views
}

// Join concatenates parts placing one copy of sep between each adjacent
// pair. Zero parts produce an empty Str and a single part is returned
// without a separator. Both []Str and []View may be joined.
func Join[T fmt.Stringer](parts []T, sep string) Str {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return Str(parts[0].String())
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p.String())
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(parts[0].String())
	for _, p := range parts[1:] {
		b.WriteString(sep)
		b.WriteString(p.String())
	}
	return Str(b.String())
}

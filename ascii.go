// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package pystr

import "github.com/charlievieth/pystr/internal/bytealg"

//go:generate go run gen.go

func isSpace(c byte) bool { return _ctype[c]&ctypeSpace != 0 }

// allClass reports if s is not empty and every byte of s has one of the
// class bits in mask.
func allClass(s Str, mask uint8) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _ctype[s[i]]&mask == 0 {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is not empty and all of its bytes are ASCII
// letters.
func (s Str) IsAlpha() bool { return allClass(s, ctypeUpper|ctypeLower) }

// IsDigit reports whether s is not empty and all of its bytes are ASCII
// digits.
func (s Str) IsDigit() bool { return allClass(s, ctypeDigit) }

// IsAlnum reports whether s is not empty and all of its bytes are ASCII
// letters or digits.
func (s Str) IsAlnum() bool { return allClass(s, ctypeUpper|ctypeLower|ctypeDigit) }

// IsSpace reports whether s is not empty and all of its bytes are
// whitespace (' ', '\t', '\n' or '\r').
func (s Str) IsSpace() bool { return allClass(s, ctypeSpace) }

// IsASCII reports whether all bytes of s are ASCII. Unlike the other Is
// methods it returns true for an empty s.
func (s Str) IsASCII() bool {
	return bytealg.IndexNonASCII(string(s)) == -1
}

// LStrip returns s with all leading whitespace removed.
func (s Str) LStrip() Str {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// RStrip returns s with all trailing whitespace removed.
func (s Str) RStrip() Str {
	i := len(s)
	for i > 0 && isSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

// Strip returns s with all leading and trailing whitespace removed.
func (s Str) Strip() Str {
	return s.LStrip().RStrip()
}

// mapASCII returns s with each byte replaced by table[c]. If no byte
// changes s is returned.
func mapASCII(s Str, table *[256]byte) Str {
	i := 0
	for i < len(s) && table[s[i]] == s[i] {
		i++
	}
	if i == len(s) {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		b[i] = table[s[i]]
	}
	return Str(b)
}

// Lower returns s with all ASCII letters mapped to lower case.
func (s Str) Lower() Str { return mapASCII(s, &_lower) }

// Upper returns s with all ASCII letters mapped to upper case.
func (s Str) Upper() Str { return mapASCII(s, &_upper) }

// Capitalize returns s with its first byte mapped to upper case and all
// remaining bytes mapped to lower case.
func (s Str) Capitalize() Str {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	b[0] = _upper[s[0]]
	for i := 1; i < len(s); i++ {
		b[i] = _lower[s[i]]
	}
	return Str(b)
}

// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package pystr

import (
	"strings"
)

// A Str is an immutable byte string. Methods that transform a Str return a
// new value and never modify the receiver.
//
// Since Go strings are immutable a Str returned by a method may share memory
// with its receiver. Use [Str.Clone] to obtain a copy that does not.
type Str string

// FromBytes returns a Str holding a copy of b.
func FromBytes(b []byte) Str {
	return Str(b)
}

// String returns the contents of s as a string.
func (s Str) String() string { return string(s) }

// Bytes returns a copy of the bytes of s. Modifying the returned slice does
// not affect s.
func (s Str) Bytes() []byte { return []byte(s) }

// Len returns the number of bytes in s.
func (s Str) Len() int { return len(s) }

// Clone returns a fresh copy of s that does not share memory with it.
// This is only useful to release a large string that s was derived from.
func (s Str) Clone() Str { return Str(strings.Clone(string(s))) }

// StartsWith reports whether s begins with prefix.
// An empty prefix always matches.
func (s Str) StartsWith(prefix string) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == prefix
}

// EndsWith reports whether s ends with suffix.
// An empty suffix always matches.
func (s Str) EndsWith(suffix string) bool {
	return len(s) >= len(suffix) && string(s[len(s)-len(suffix):]) == suffix
}

// Contains reports whether sub occurs anywhere in s. The empty string is
// contained in every Str, note that this differs from [Str.Count] which
// returns 0 for an empty sub.
func (s Str) Contains(sub string) bool {
	return strings.Contains(string(s), sub)
}

// Find returns the byte offset of the first occurrence of sub in s, or -1
// if sub is not present. Find returns 0 for an empty sub.
func (s Str) Find(sub string) int {
	return strings.Index(string(s), sub)
}

// Count returns the number of non-overlapping occurrences of sub in s,
// matching from left to right. Count returns 0 if sub is empty.
func (s Str) Count(sub string) int {
	if len(sub) == 0 {
		return 0
	}
	return strings.Count(string(s), sub)
}

// Replace returns a copy of s with every non-overlapping occurrence of from
// replaced by to. Matches are found left to right in a single pass and the
// text inserted by to is never searched. If from is empty s is returned
// unchanged.
func (s Str) Replace(from, to string) Str {
	if len(from) == 0 {
		return s
	}
	return Str(strings.Replace(string(s), from, to, -1))
}

// Remove returns a copy of s with every non-overlapping occurrence of sub
// removed. It is equivalent to s.Replace(sub, "").
func (s Str) Remove(sub string) Str {
	return s.Replace(sub, "")
}

// Repeat returns n copies of s concatenated. If n <= 0 or s is empty the
// result is empty.
//
// It panics if the length of the result would overflow an int.
func (s Str) Repeat(n int) Str {
	if n <= 0 || len(s) == 0 {
		return ""
	}
	return Str(strings.Repeat(string(s), n))
}

package pystr

import "errors"

// ErrZeroStep is the panic value of [Str.SliceStep] when called with a step
// of zero.
var ErrZeroStep = errors.New("pystr: slice step cannot be zero")

// clamp pins i to the range [0, n].
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// adjustIndex converts start and end to offsets in the range [0, n].
// Negative values are relative to the end.
func adjustIndex(start, end, n int) (int, int) {
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	return clamp(start, n), clamp(end, n)
}

// Slice returns the bytes of s in the half-open range [start, end). It is
// equivalent to s.SliceStep(start, end, 1).
func (s Str) Slice(start, end int) Str {
	return s.SliceStep(start, end, 1)
}

// SliceStep returns the bytes of s selected by the Python slice
// s[start:end:step].
//
// Negative start and end are offsets from the end of s. Both are then
// clamped into [0, len(s)], so out of range values are never an error.
//
// If step is positive the bytes at start, start+step, ... that are less than
// end are returned. If step is negative the bytes at start, start+step, ...
// that are greater than end are returned in that (reverse) order. The
// result is empty when the range selects nothing.
//
// SliceStep panics with [ErrZeroStep] if step is zero.
func (s Str) SliceStep(start, end, step int) Str {
	if step == 0 {
		panic(ErrZeroStep)
	}
	n := len(s)
	start, end = adjustIndex(start, end, n)
	if step == 1 {
		if start >= end {
			return ""
		}
		return s[start:end]
	}

	var count int
	if step > 0 {
		if start >= end {
			return ""
		}
		count = (end-start-1)/step + 1
	} else {
		if start <= end {
			return ""
		}
		// There is no byte at offset n so a clamped start begins at the
		// last byte.
		if start == n {
			start = n - 1
			if start <= end {
				return ""
			}
		}
		count = 1 - (start-end-1)/step
	}
	// Index by count so that a large step cannot overflow.
	b := make([]byte, count)
	for k := range b {
		b[k] = s[start+k*step]
	}
	return Str(b)
}

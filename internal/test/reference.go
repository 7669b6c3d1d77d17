package test

// normalize converts a Python index into an offset in [0, n].
func normalize(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// SliceReference is a slow reference implementation of
// pystr.Str.SliceStep. Instead of stepping from start it tests every offset
// of s for membership in the slice.
func SliceReference(s string, start, end, step int) string {
	if step == 0 {
		panic("SliceReference: zero step")
	}
	n := len(s)
	start = normalize(start, n)
	end = normalize(end, n)
	var b []byte
	if step > 0 {
		for i := 0; i < n; i++ {
			if start <= i && i < end && (i-start)%step == 0 {
				b = append(b, s[i])
			}
		}
		return string(b)
	}
	if start == n {
		start = n - 1
	}
	for i := n - 1; i >= 0; i-- {
		if end < i && i <= start && (start-i)%step == 0 {
			b = append(b, s[i])
		}
	}
	return string(b)
}

// CountReference counts the non-overlapping occurrences of sub in s by
// comparing at every offset.
func CountReference(s, sub string) int {
	if len(sub) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(sub) <= len(s); {
		if s[i:i+len(sub)] == sub {
			n++
			i += len(sub)
		} else {
			i++
		}
	}
	return n
}

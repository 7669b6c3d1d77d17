package pystr

import (
	"errors"
	"fmt"
	"testing"
)

type SliceTest struct {
	in               string
	start, end, step int
	out              string
}

var sliceTests = []SliceTest{
	// step 1
	{"abcdef", 0, 6, 1, "abcdef"},
	{"abcdef", 0, 3, 1, "abc"},
	{"abcdef", 2, 4, 1, "cd"},
	{"abcdef", -3, -1, 1, "de"},
	{"abcdef", -3, 6, 1, "def"},
	{"abcdef", -100, 100, 1, "abcdef"},
	{"abcdef", 100, 200, 1, ""},
	{"abcdef", -200, -100, 1, ""},
	{"abcdef", 4, 2, 1, ""},
	{"abcdef", 3, 3, 1, ""},
	{"abcdef", 0, -1, 1, "abcde"},
	{"", 0, 0, 1, ""},
	{"", -1, 1, 1, ""},

	// positive step
	{"abcdef", 0, 6, 2, "ace"},
	{"abcdef", 1, 6, 2, "bdf"},
	{"abcdef", 0, 6, 3, "ad"},
	{"abcdef", 0, 6, 6, "a"},
	{"abcdef", 0, 6, 100, "a"},
	{"abcdef", 5, 6, 2, "f"},
	{"abcdef", -2, 100, 2, "e"},
	{"abcdef", 6, 0, 2, ""},
	{"abcdef", 0, 1, 2, "a"},
	{"abcdef", 0, 2, 2, "a"},
	{"abcdef", 0, 3, 2, "ac"},

	// negative step
	{"abcdef", 5, 0, -2, "fdb"},
	{"abcdef", 5, 0, -1, "fedcb"},
	{"abcdef", -1, -7, -1, "fedcb"},
	{"abcdef", 6, 0, -1, "fedcb"},
	{"abcdef", 100, 0, -1, "fedcb"},
	{"abcdef", 100, 0, -2, "fdb"},
	{"abcdef", 5, 4, -1, "f"},
	{"abcdef", 5, 5, -1, ""},
	{"abcdef", 0, 5, -1, ""},
	{"abcdef", 0, 0, -1, ""},
	{"abcdef", 5, 0, -100, "f"},
	{"abcdef", 3, 0, -3, "d"},
	{"abcdef", 4, 0, -3, "eb"},
	{"abcdef", -2, 1, -1, "edc"},
	{"a", 1, 0, -1, ""},
	{"ab", 2, 0, -1, "b"},
	{"", 0, 0, -1, ""},
	{"", 10, -10, -1, ""},

	// large steps must not overflow
	{"abcdef", 0, 6, int(^uint(0) >> 1), "a"},
	{"abcdef", 5, 0, -int(^uint(0)>>1) - 1, "f"},
}

func TestSliceStep(t *testing.T) {
	for _, test := range sliceTests {
		got := Str(test.in).SliceStep(test.start, test.end, test.step)
		if string(got) != test.out {
			t.Errorf("SliceStep(%q, %d, %d, %d) = %q; want: %q",
				test.in, test.start, test.end, test.step, got, test.out)
		}
	}
}

func TestSlice(t *testing.T) {
	for _, test := range sliceTests {
		if test.step != 1 {
			continue
		}
		got := Str(test.in).Slice(test.start, test.end)
		if string(got) != test.out {
			t.Errorf("Slice(%q, %d, %d) = %q; want: %q",
				test.in, test.start, test.end, got, test.out)
		}
	}
}

func TestSliceIdentity(t *testing.T) {
	for _, s := range []Str{"", "a", "abc", "hello, world"} {
		if got := s.Slice(0, s.Len()); got != s {
			t.Errorf("Slice(%q, 0, %d) = %q; want: %q", s, s.Len(), got, s)
		}
	}
}

func TestSliceSuffix(t *testing.T) {
	s := Str("hello, world")
	for k := 1; k <= s.Len(); k++ {
		got := s.Slice(-k, s.Len())
		want := s[s.Len()-k:]
		if got != want {
			t.Errorf("Slice(%q, %d, %d) = %q; want: %q", s, -k, s.Len(), got, want)
		}
	}
	// -0 is not negative so it is not an offset from the end.
	if got := s.Slice(-0, s.Len()); got != s {
		t.Errorf("Slice(%q, %d, %d) = %q; want: %q", s, -0, s.Len(), got, s)
	}
}

func TestSliceLength(t *testing.T) {
	s := Str("abcdefgh")
	n := s.Len()
	for start := -2 * n; start <= 2*n; start++ {
		for end := -2 * n; end <= 2*n; end++ {
			i, j := adjustIndex(start, end, n)
			want := j - i
			if want < 0 {
				want = 0
			}
			if got := s.Slice(start, end).Len(); got != want {
				t.Errorf("Slice(%q, %d, %d).Len() = %d; want: %d", s, start, end, got, want)
			}
		}
	}
}

func TestAdjustIndex(t *testing.T) {
	tests := []struct {
		start, end, n int
		i, j          int
	}{
		{0, 0, 0, 0, 0},
		{-1, -1, 0, 0, 0},
		{-1, 1, 5, 4, 1},
		{-5, -6, 5, 0, 0},
		{10, -10, 5, 5, 0},
		{3, 4, 5, 3, 4},
	}
	for _, test := range tests {
		i, j := adjustIndex(test.start, test.end, test.n)
		if i != test.i || j != test.j {
			t.Errorf("adjustIndex(%d, %d, %d) = %d, %d; want: %d, %d",
				test.start, test.end, test.n, i, j, test.i, test.j)
		}
	}
}

func TestSliceStepZero(t *testing.T) {
	for _, s := range []Str{"", "abc"} {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			defer func() {
				e := recover()
				if e == nil {
					t.Fatal("SliceStep: expected a panic for a zero step")
				}
				err, ok := e.(error)
				if !ok || !errors.Is(err, ErrZeroStep) {
					t.Fatalf("SliceStep: panic value = %#v; want: %v", e, ErrZeroStep)
				}
			}()
			s.SliceStep(0, s.Len(), 0)
		})
	}
}

func TestSliceAllocs(t *testing.T) {
	s := Str("hello, world")
	n := testing.AllocsPerRun(100, func() {
		_ = s.Slice(1, 5)
		_ = s.Slice(-5, -1)
	})
	if n != 0 {
		t.Errorf("Slice: got %.2f allocs; want: 0", n)
	}
}

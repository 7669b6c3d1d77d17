// Package test contains the randomized test harness and reference
// implementations shared by the pystr tests and benchmarks.
package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Bytes that are interesting to the operations under test: whitespace,
// common separators, both cases of a few letters, digits and non-ASCII.
const interestingBytes = " \t\n\r,;:.-_/aAbBzZ019\x00\x7f\x80\xc3\xff"

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func intn(rr *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rr.Intn(n)
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if runtime.GOOS == "darwin" && runtime.GOARCH == "arm64" {
		// Avoid using all the cores.
		if numCPU >= 8 {
			numCPU -= 2
		}
	}
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

// Run calls fn repeatedly with a Fuzz seeded from a fixed seed, the current
// time and crypto/rand. Each seed runs in its own parallel subtest named
// after the seed so that failures can be reproduced.
func Run(t *testing.T, fn func(f *Fuzz)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the number of iterations per seed.
	count := 2_500
	if testing.Short() {
		count /= 2
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 4_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			f := NewFuzz(t, seed)
			for i := 0; i < count; i++ {
				fn(f)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

// A Fuzz generates random arguments. Errors reported through it abort the
// test once too many have occurred.
type Fuzz struct {
	testing.TB
	rr  *rand.Rand
	buf []byte // scratch space for String
}

// NewFuzz returns a Fuzz for t. A negative seed is replaced with a random
// one.
func NewFuzz(t *testing.T, seed int64) *Fuzz {
	if seed < 0 {
		seed = cryptoRandInt(t)
	}
	return &Fuzz{
		TB:  &testWrapper{T: t},
		rr:  rand.New(rand.NewSource(seed)),
		buf: make([]byte, 0, 64),
	}
}

// Intn returns a random int in [0, n) or 0 if n <= 0.
func (f *Fuzz) Intn(n int) int { return intn(f.rr, n) }

// Byte returns a random byte. Half of the time it is one of a small set of
// bytes that are significant to splitting, stripping and case conversion.
func (f *Fuzz) Byte() byte {
	if f.rr.Intn(2) == 0 {
		return interestingBytes[f.rr.Intn(len(interestingBytes))]
	}
	return byte(f.rr.Intn(256))
}

// String returns a random string of at most max bytes.
func (f *Fuzz) String(max int) string {
	n := f.Intn(max + 1)
	b := f.buf[:0]
	switch f.rr.Intn(8) {
	case 0:
		// Few distinct bytes so that patterns repeat.
		x, y := f.Byte(), f.Byte()
		for i := 0; i < n; i++ {
			if f.rr.Intn(2) == 0 {
				b = append(b, x)
			} else {
				b = append(b, y)
			}
		}
	case 1:
		// Words separated by whitespace.
		for i := 0; i < n; i++ {
			if f.rr.Intn(4) == 0 {
				b = append(b, " \t\n\r"[f.rr.Intn(4)])
			} else {
				b = append(b, byte('a'+f.rr.Intn(26)))
			}
		}
	default:
		for i := 0; i < n; i++ {
			b = append(b, f.Byte())
		}
	}
	f.buf = b
	return string(b)
}

// Substring returns either a random substring of s or a short random
// string that is probably not in s.
func (f *Fuzz) Substring(s string) string {
	if len(s) == 0 || f.rr.Intn(4) == 0 {
		return f.String(3)
	}
	i := f.Intn(len(s))
	j := i + f.Intn(min(len(s)-i, 4)+1)
	return s[i:j]
}

// Index returns a random index for a string of length n. The index may be
// negative or larger than n so that normalization and clamping are
// exercised.
func (f *Fuzz) Index(n int) int {
	switch f.rr.Intn(8) {
	case 0:
		return -n - 1 - f.Intn(8)
	case 1:
		return n + f.Intn(8)
	case 2, 3:
		return -f.Intn(n + 1)
	default:
		return f.Intn(n + 1)
	}
}

// Step returns a random non-zero slice step.
func (f *Fuzz) Step() int {
	step := 1 + f.Intn(4)
	if f.rr.Intn(8) == 0 {
		step += f.Intn(64)
	}
	if f.rr.Intn(2) == 0 {
		step = -step
	}
	return step
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fail() {
	c.T.Helper()
	c.T.Fail()
	c.check()
}

func (c *testWrapper) FailNow() {
	c.T.Helper()
	c.T.FailNow()
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}

package pystr

import (
	"testing"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	asciiLetters = rangetable.Merge(
		rangetable.New([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...),
		rangetable.New([]rune("abcdefghijklmnopqrstuvwxyz")...),
	)
	asciiDigits = rangetable.New([]rune("0123456789")...)
	asciiSpaces = rangetable.New(' ', '\t', '\n', '\r')
)

func TestCaseTables(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		wantLower, wantUpper := c, c
		if c < 0x80 {
			wantLower = byte(unicode.ToLower(rune(c)))
			wantUpper = byte(unicode.ToUpper(rune(c)))
		}
		if _lower[c] != wantLower {
			t.Errorf("_lower[0x%02X] = 0x%02X; want: 0x%02X", c, _lower[c], wantLower)
		}
		if _upper[c] != wantUpper {
			t.Errorf("_upper[0x%02X] = 0x%02X; want: 0x%02X", c, _upper[c], wantUpper)
		}
	}
}

func TestCtypeTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		r := rune(c)
		var want uint8
		if unicode.Is(asciiLetters, r) {
			if unicode.IsUpper(r) {
				want |= ctypeUpper
			} else {
				want |= ctypeLower
			}
		}
		if unicode.Is(asciiDigits, r) {
			want |= ctypeDigit
		}
		if unicode.Is(asciiSpaces, r) {
			want |= ctypeSpace
		}
		if _ctype[c] != want {
			t.Errorf("_ctype[0x%02X] = 0x%02X; want: 0x%02X", c, _ctype[c], want)
		}
	}
}

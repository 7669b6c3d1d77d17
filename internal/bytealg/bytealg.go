// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg implements the byte scanning loops used by pystr.
package bytealg

import (
	"math/bits"
	"strings"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CountByte returns the number of instances of c in s.
//
// Unlike strings.Count(s, string(c)) this counts bytes and not the UTF-8
// encoding of c, so it is correct for c >= utf8.RuneSelf.
func CountByte(s string, c byte) int {
	n := 0
	for {
		i := strings.IndexByte(s, c)
		if i < 0 {
			return n
		}
		n++
		s = s[i+1:]
	}
}

// Strings shorter than this are scanned one byte at a time.
const minWordScan = 16

const nonASCIIMask = 0x8080808080808080

// IndexNonASCII returns the index of the first byte of s that is not ASCII,
// or -1 if s is all ASCII.
func IndexNonASCII(s string) int {
	if len(s) < minWordScan {
		return indexNonASCIIBytes(s, 0)
	}
	p := unsafe.Pointer(unsafe.StringData(s))
	// Scan bytes until p+i is word aligned.
	i := 0
	for ; (uintptr(p)+uintptr(i))&7 != 0; i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	for ; i+8 <= len(s); i += 8 {
		if m := *(*uint64)(unsafe.Add(p, i)) & nonASCIIMask; m != 0 {
			return i + firstMaskedByte(m)
		}
	}
	return indexNonASCIIBytes(s, i)
}

// firstMaskedByte returns the index, in memory order, of the first byte
// with its high bit set in the native order word m.
func firstMaskedByte(m uint64) int {
	if cpu.IsBigEndian {
		return bits.LeadingZeros64(m) / 8
	}
	return bits.TrailingZeros64(m) / 8
}

func indexNonASCIIBytes(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b under some collation.
type Compare func(a, b []byte) int

// EqualCompare returns 0 if a and b are equal under some collation and 1
// otherwise. It is not an ordering: callers that only need equality use it
// because it can reject on a length mismatch without looking at the bytes.
//
// For a given Compare, EqualCompare(a,b)=0 iff Compare(a,b)=0.
type EqualCompare func(a, b []byte) int

// SortKey returns a view of s such that comparing two sort keys with
// RawCompare orders them exactly as the collation's Compare orders the
// original strings. The returned view aliases s.
type SortKey func(s []byte) []byte

// AbbreviatedKey returns a fixed length prefix of a key such that
//
//	AbbreviatedKey(a) < AbbreviatedKey(b) implies a < b, and
//	AbbreviatedKey(a) > AbbreviatedKey(b) implies a > b.
//
// If AbbreviatedKey(a) == AbbreviatedKey(b), an additional comparison is
// required to determine if the two keys are actually equal.
type AbbreviatedKey func(key []byte) uint64

// Hash returns a 64-bit hash of a key such that keys equal under the
// collation hash equally.
type Hash func(key []byte) uint64

// FormatKey returns a formatter for a key.
type FormatKey func(key []byte) fmt.Formatter

// DefaultFormatter is the default implementation of key formatting:
// non-ASCII data is formatted as escaped hexadecimal values.
var DefaultFormatter FormatKey = func(key []byte) fmt.Formatter {
	return FormatBytes(key)
}

// RawEqualCompare returns 0 if a and b are byte-for-byte identical (lengths
// included) and 1 otherwise.
//
// Lengths are checked first; bytes.Equal then compiles to the runtime's
// vectorized memequal.
func RawEqualCompare(a, b []byte) int {
	if bytes.Equal(a, b) {
		return 0
	}
	return 1
}

// RawCompare compares a and b lexicographically byte by byte, with a proper
// prefix ordering before the longer string. It returns -1, 0 or +1.
func RawCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// AbbreviateBigEndian returns the first eight bytes of key interpreted as a
// big-endian integer, zero-filling keys shorter than eight bytes. It is an
// AbbreviatedKey for RawCompare.
func AbbreviateBigEndian(key []byte) uint64 {
	if len(key) >= 8 {
		return binary.BigEndian.Uint64(key)
	}
	var v uint64
	for _, b := range key {
		v <<= 8
		v |= uint64(b)
	}
	return v << uint(8*(8-len(key)))
}

// SharedPrefixLen returns the largest i such that a[:i] equals b[:i].
func SharedPrefixLen(a, b []byte) int {
	i, n := 0, len(a)
	if n > len(b) {
		n = len(b)
	}
	asUint64 := func(c []byte, i int) uint64 {
		return binary.LittleEndian.Uint64(c[i:])
	}
	for i < n-7 && asUint64(a, i) == asUint64(b, i) {
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// FormatBytes formats a byte slice using hexadecimal escapes for non-ASCII
// data. Spaces are printed as-is, so trailing padding is visible only through
// the surrounding quotes the caller adds.
type FormatBytes []byte

const lowerhex = "0123456789abcdef"

// Format implements the fmt.Formatter interface.
func (p FormatBytes) Format(s fmt.State, c rune) {
	buf := make([]byte, 0, len(p))
	for _, b := range p {
		if b < utf8.RuneSelf && strconv.IsPrint(rune(b)) {
			buf = append(buf, b)
			continue
		}
		buf = append(buf, `\x`...)
		buf = append(buf, lowerhex[b>>4])
		buf = append(buf, lowerhex[b&0xF])
	}
	s.Write(buf)
}

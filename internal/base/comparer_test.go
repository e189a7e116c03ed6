// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// randSpaceyBytes returns random strings over a small alphabet that is
// heavy in spaces, so trailing padding and shared prefixes are common.
func randSpaceyBytes(rng *rand.Rand, maxLen int) []byte {
	const alphabet = "  \x00ab\xff"
	data := make([]byte, rng.IntN(maxLen+1))
	for i := range data {
		data[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return data
}

func TestRawCompare(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "", +1},
		{"ab", "ab  ", -1},
		{"ab  ", "ab", +1},
		{"abc", "abd", -1},
		{"b", "abc", +1},
		{"\xff", "\x00", +1},
		{"same", "same", 0},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			require.Equal(t, tc.want, RawCompare([]byte(tc.a), []byte(tc.b)))
		})
	}
}

func TestRawEqualCompare(t *testing.T) {
	require.Equal(t, 0, RawEqualCompare(nil, []byte{}))
	require.Equal(t, 0, RawEqualCompare([]byte("ab"), []byte("ab")))
	require.Equal(t, 1, RawEqualCompare([]byte("ab"), []byte("ab ")))
	require.Equal(t, 1, RawEqualCompare([]byte("ab"), []byte("ba")))

	// The equality oracle must agree with the full comparison.
	rng := rand.New(rand.NewPCG(0, uint64(time.Now().UnixNano())))
	for i := 0; i < 10000; i++ {
		a, b := randSpaceyBytes(rng, 6), randSpaceyBytes(rng, 6)
		if rng.IntN(4) == 0 {
			b = slices.Clone(a)
		}
		eq := RawEqualCompare(a, b)
		require.Contains(t, []int{0, 1}, eq)
		require.Equal(t, RawCompare(a, b) == 0, eq == 0, "a=%q b=%q", a, b)
	}
}

func TestAbbreviateBigEndian(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, uint64(time.Now().UnixNano())))
	randBytes := func(size int) []byte {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(rng.Int() & 0xff)
		}
		return data
	}

	keys := make([][]byte, 10000)
	for i := range keys {
		keys[i] = randBytes(rng.IntN(16))
	}
	slices.SortFunc(keys, RawCompare)

	for i := 1; i < len(keys); i++ {
		last := AbbreviateBigEndian(keys[i-1])
		cur := AbbreviateBigEndian(keys[i])
		cmp := RawCompare(keys[i-1], keys[i])
		if cmp == 0 {
			if last != cur {
				t.Fatalf("expected equal abbreviated keys: %x[%x] != %x[%x]",
					last, keys[i-1], cur, keys[i])
			}
		} else {
			if last > cur {
				t.Fatalf("unexpected abbreviated key ordering: %x[%x] > %x[%x]",
					last, keys[i-1], cur, keys[i])
			}
		}
	}
}

func TestSharedPrefixLen(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abc", "abd", 2},
		{"abcdefghij", "abcdefghik", 9},
		{"abcdefghij", "abcdefghij  ", 10},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, SharedPrefixLen([]byte(tc.a), []byte(tc.b)), "%q %q", tc.a, tc.b)
	}
}

func TestFormatBytes(t *testing.T) {
	require.Equal(t, `ab \x00\xff`, fmt.Sprint(FormatBytes("ab \x00\xff")))
	require.Equal(t, `ab  `, fmt.Sprint(DefaultFormatter([]byte("ab  "))))
}

func BenchmarkRawEqualCompare(b *testing.B) {
	x := bytes.Repeat([]byte("a"), 64)
	y := slices.Clone(x)
	z := bytes.Repeat([]byte("a"), 65)
	b.Run("equal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = RawEqualCompare(x, y)
		}
	})
	b.Run("length-mismatch", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = RawEqualCompare(x, z)
		}
	})
}

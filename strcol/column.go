// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strcol iterates packed string columns without copying.
//
// # Representation
//
// A packed column of N strings is a single data buffer holding the strings
// back to back, each followed by one zero terminator byte, and an array of N
// cumulative end offsets. The end offset of row i points one past its
// terminator, so row i occupies
//
//	chars[offsets[i-1] : offsets[i]-1]   (offsets[-1] = 0)
//
// For example the strings "foo" and "barbaz" are stored as:
//
//	+---+---+---+----+---+---+---+---+---+---+----+
//	| f | o | o | \0 | b | a | r | b | a | z | \0 |   offsets: [4, 11]
//	+---+---+---+----+---+---+---+---+---+---+----+
//
// The layout is owned by the caller. ForEach and ForEachPair trust it; use
// Validate where the column comes from an untrusted source. Builds with the
// "invariants" or "race" tags validate before iterating.
package strcol

import (
	"iter"

	"github.com/bincollate/bincollate/internal/invariants"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Terminator is the byte stored after every string.
const Terminator byte = 0

// ErrMalformed is returned by Validate when a column violates the packed
// layout.
var ErrMalformed = errors.New("strcol: malformed packed column")

// Offset is a constraint that permits the unsigned integer types used for end
// offsets.
type Offset interface {
	constraints.Unsigned
}

// ForEach invokes fn for each of the first size rows of the packed column in
// row order, passing a view of the row without its terminator. The view
// aliases chars and has its capacity clipped to its length; it must not be
// retained past the lifetime of chars.
func ForEach[O Offset](chars []byte, offsets []O, size int, fn func(v []byte, i int)) {
	if invariants.Enabled {
		mustValidate(chars, offsets, size)
	}
	var prev O
	for i := 0; i < size; i++ {
		end := offsets[i] - 1
		fn(chars[prev:end:end], i)
		prev = offsets[i]
	}
}

// ForEachPair invokes fn for each of the first size rows of two packed
// columns in row order. The columns advance independently; row i of a and
// row i of b need not have the same length.
func ForEachPair[O Offset](
	aChars []byte, aOffsets []O, bChars []byte, bOffsets []O, size int, fn func(a, b []byte, i int),
) {
	if invariants.Enabled {
		mustValidate(aChars, aOffsets, size)
		mustValidate(bChars, bOffsets, size)
	}
	var aPrev, bPrev O
	for i := 0; i < size; i++ {
		aEnd := aOffsets[i] - 1
		bEnd := bOffsets[i] - 1
		fn(aChars[aPrev:aEnd:aEnd], bChars[bPrev:bEnd:bEnd], i)
		aPrev = aOffsets[i]
		bPrev = bOffsets[i]
	}
}

// Validate checks that chars and offsets form a well-formed packed column of
// size rows. The returned error is marked with ErrMalformed.
func Validate[O Offset](chars []byte, offsets []O, size int) error {
	if size < 0 {
		return errors.Wrapf(ErrMalformed, "negative row count %d", size)
	}
	if len(offsets) != size {
		return errors.Wrapf(ErrMalformed, "%d offsets for %d rows", len(offsets), size)
	}
	var prev O
	for i, off := range offsets {
		if off <= prev {
			return errors.Wrapf(ErrMalformed,
				"row %d: end offset %d leaves no room for a terminator after %d", i, off, prev)
		}
		if uint64(off) > uint64(len(chars)) {
			return errors.Wrapf(ErrMalformed,
				"row %d: end offset %d beyond data length %d", i, off, len(chars))
		}
		if t := chars[off-1]; t != Terminator {
			return errors.Wrapf(ErrMalformed,
				"row %d: terminator at offset %d is %#x", i, off-1, t)
		}
		prev = off
	}
	return nil
}

func mustValidate[O Offset](chars []byte, offsets []O, size int) {
	if err := Validate(chars, offsets, size); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "iterating packed column"))
	}
}

// Column is a packed string column with 64-bit end offsets. The zero value is
// an empty column.
type Column struct {
	Chars   []byte
	Offsets []uint64
}

// Rows returns the number of strings in the column.
func (c Column) Rows() int {
	return len(c.Offsets)
}

// At returns the string at row i. The returned slice must not be mutated.
func (c Column) At(i int) []byte {
	invariants.CheckBounds(i, len(c.Offsets))
	var start uint64
	if i > 0 {
		start = c.Offsets[i-1]
	}
	end := c.Offsets[i] - 1
	return c.Chars[start:end:end]
}

// ForEach invokes fn for every row of the column.
func (c Column) ForEach(fn func(v []byte, i int)) {
	ForEach(c.Chars, c.Offsets, len(c.Offsets), fn)
}

// All returns an iterator over the rows of the column. Unlike ForEach, the
// iteration may be stopped early.
func (c Column) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		var prev uint64
		for i, off := range c.Offsets {
			if !yield(i, c.Chars[prev:off-1:off-1]) {
				return
			}
			prev = off
		}
	}
}

// Validate checks that the column is well formed.
func (c Column) Validate() error {
	return Validate(c.Chars, c.Offsets, len(c.Offsets))
}

// ForEachPairColumns invokes fn for every row of a and b, which must have the
// same number of rows.
func ForEachPairColumns(a, b Column, fn func(a, b []byte, i int)) {
	if invariants.Enabled && a.Rows() != b.Rows() {
		panic(errors.AssertionFailedf("columns have %d and %d rows", a.Rows(), b.Rows()))
	}
	ForEachPair(a.Chars, a.Offsets, b.Chars, b.Offsets, a.Rows(), fn)
}

// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package strcol

import (
	"fmt"
	"io"

	"github.com/bincollate/bincollate/internal/invariants"
)

// Builder encodes a packed string column.
type Builder struct {
	chars   []byte
	offsets []uint64
}

// Reset resets the builder to an empty state, retaining its buffers. Columns
// previously returned by Finish must no longer be used.
func (b *Builder) Reset() {
	b.chars = b.chars[:0]
	b.offsets = b.offsets[:0]
}

// Put appends the provided string to the builder.
func (b *Builder) Put(s []byte) {
	b.chars = append(b.chars, s...)
	b.chars = append(b.chars, Terminator)
	b.offsets = append(b.offsets, uint64(len(b.chars)))
}

// PutString appends the provided string to the builder.
func (b *Builder) PutString(s string) {
	b.chars = append(b.chars, s...)
	b.chars = append(b.chars, Terminator)
	b.offsets = append(b.offsets, uint64(len(b.chars)))
}

// PutConcat appends a single string formed by the concatenation of the two
// arguments.
func (b *Builder) PutConcat(s1, s2 []byte) {
	b.chars = append(append(b.chars, s1...), s2...)
	b.chars = append(b.chars, Terminator)
	b.offsets = append(b.offsets, uint64(len(b.chars)))
}

// Rows returns the count of strings that have been added to the builder.
func (b *Builder) Rows() int {
	return len(b.offsets)
}

// Size returns the number of bytes in the data buffer, terminators included.
func (b *Builder) Size() int {
	return len(b.chars)
}

// DataSize returns the number of string bytes added, terminators excluded.
func (b *Builder) DataSize() int {
	return invariants.SafeSub(len(b.chars), len(b.offsets))
}

// UnsafeGet returns the i'th string added to the builder. The returned slice
// is owned by the builder and must not be mutated.
func (b *Builder) UnsafeGet(i int) []byte {
	invariants.CheckBounds(i, len(b.offsets))
	var start uint64
	if i > 0 {
		start = b.offsets[i-1]
	}
	return b.chars[start : b.offsets[i]-1]
}

// Finish returns the column built so far. The column aliases the builder's
// buffers and remains valid until the next call to Reset.
func (b *Builder) Finish() Column {
	return Column{Chars: b.chars, Offsets: b.offsets}
}

// WriteDebug writes a one-line summary of the builder state.
func (b *Builder) WriteDebug(w io.Writer) {
	fmt.Fprintf(w, "strings: %d rows set; %d bytes in data (%d string bytes)",
		len(b.offsets), len(b.chars), b.DataSize())
}

// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package colcmp

import (
	"slices"
	"unsafe"

	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/strcol"
	"github.com/cockroachdb/swiss"
)

// SortKeys appends the sort key of every row of col to dst and returns the
// extended slice. The keys are views of col.Chars.
func SortKeys(c *bincollate.Collator, col strcol.Column, dst [][]byte) [][]byte {
	dst = slices.Grow(dst, col.Rows())
	sortKey := c.SortKey
	col.ForEach(func(v []byte, _ int) {
		dst = append(dst, sortKey(v))
	})
	return dst
}

// SortPermutation returns the row indexes of col in collation order. Rows
// that compare equal keep their relative order.
//
// Sort keys are extracted once per row and compared bytewise, rather than
// re-trimming both sides on every comparison.
func SortPermutation(c *bincollate.Collator, col strcol.Column) []int {
	keys := SortKeys(c, col, nil)
	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(i, j int) int {
		return bincollate.RawCompare(keys[i], keys[j])
	})
	return perm
}

// Hashes appends the collation hash of every row of col to dst and returns
// the extended slice. Rows equal under the collation hash equally.
func Hashes(c *bincollate.Collator, col strcol.Column, dst []uint64) []uint64 {
	dst = slices.Grow(dst, col.Rows())
	hash := c.Hash
	col.ForEach(func(v []byte, _ int) {
		dst = append(dst, hash(v))
	})
	return dst
}

// Group assigns every row of col a dense group id such that two rows share
// an id iff they are equal under the collation. Ids are assigned in order of
// first appearance, starting at 0. It returns the ids and the number of
// groups.
func Group(c *bincollate.Collator, col strcol.Column) (ids []uint32, groups int) {
	ids = make([]uint32, col.Rows())
	m := swiss.New[string, uint32](0)
	sortKey := c.SortKey
	col.ForEach(func(v []byte, i int) {
		k := sortKey(v)
		// The map key aliases the column; col.Chars outlives m.
		ks := unsafe.String(unsafe.SliceData(k), len(k))
		id, ok := m.Get(ks)
		if !ok {
			id = uint32(m.Len())
			m.Put(ks, id)
		}
		ids[i] = id
	})
	return ids, m.Len()
}

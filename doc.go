// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bincollate implements binary SQL collations over byte strings:
// comparison, equality and sort-key extraction with either PAD SPACE
// semantics, where trailing spaces are insignificant as for CHAR columns, or
// NO PAD semantics, where every byte counts.
//
// The functions operate on views of caller-owned memory and never copy or
// allocate. A Collator binds the comparison functions for one collation, so a
// query operator resolves the padding behavior once and then calls straight
// into the specialized function for every row:
//
//	c, err := bincollate.ByName("utf8mb4_bin")
//	...
//	c.Compare([]byte("ab"), []byte("ab  ")) // 0
//	c.SortKey([]byte("ab  "))               // "ab"
//
// For any Collator c and strings a, b:
//
//	Signum(c.Compare(a, b)) == RawCompare(c.SortKey(a), c.SortKey(b))
//
// which allows sort keys to be extracted once and compared many times.
//
// Packed string columns are iterated with package strcol and compared
// row-wise with package colcmp.
package bincollate

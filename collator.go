// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bincollate

import (
	"github.com/bincollate/bincollate/internal/base"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/redact"
)

// PadAttribute selects whether trailing spaces are significant.
type PadAttribute uint8

const (
	// NoPad compares raw bytes: "ab" < "ab  ".
	NoPad PadAttribute = iota
	// PadSpace ignores trailing spaces: "ab" == "ab  ".
	PadSpace
)

// String implements fmt.Stringer.
func (p PadAttribute) String() string {
	switch p {
	case NoPad:
		return "NO PAD"
	case PadSpace:
		return "PAD SPACE"
	default:
		return "UNKNOWN PAD"
	}
}

// SafeFormat implements redact.SafeFormatter.
func (p PadAttribute) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(p.String()))
}

// BinCompareWithPadding compares a and b bytewise after trimming trailing
// spaces from both.
func BinCompareWithPadding(a, b []byte) int {
	return base.RawCompare(base.RightTrim(a), base.RightTrim(b))
}

// BinCompareNoPadding compares a and b bytewise.
func BinCompareNoPadding(a, b []byte) int {
	return base.RawCompare(a, b)
}

// BinEqualWithPadding returns 0 if a and b are equal once trailing spaces
// are trimmed, and 1 otherwise.
func BinEqualWithPadding(a, b []byte) int {
	return base.RawEqualCompare(base.RightTrim(a), base.RightTrim(b))
}

// BinEqualNoPadding returns 0 if a and b are byte-for-byte equal, and 1
// otherwise.
func BinEqualNoPadding(a, b []byte) int {
	return base.RawEqualCompare(a, b)
}

// BinSortKeyWithPadding returns s without trailing spaces.
func BinSortKeyWithPadding(s []byte) []byte {
	return base.RightTrim(s)
}

// BinSortKeyNoPadding returns s.
func BinSortKeyNoPadding(s []byte) []byte {
	return s
}

// BinCollatorCompare returns the binary Compare function for the padding
// attribute. Callers resolve it once per collation rather than per row.
func BinCollatorCompare(p PadAttribute) Compare {
	if p == PadSpace {
		return BinCompareWithPadding
	}
	return BinCompareNoPadding
}

// BinCollatorEqual returns the binary EqualCompare function for the padding
// attribute.
func BinCollatorEqual(p PadAttribute) EqualCompare {
	if p == PadSpace {
		return BinEqualWithPadding
	}
	return BinEqualNoPadding
}

// BinCollatorSortKey returns the binary SortKey function for the padding
// attribute.
func BinCollatorSortKey(p PadAttribute) SortKey {
	if p == PadSpace {
		return BinSortKeyWithPadding
	}
	return BinSortKeyNoPadding
}

// Collator defines a total ordering over byte strings for one SQL collation,
// together with the derived operations a query engine needs: an equality
// oracle, sort keys, abbreviated keys and hashes.
//
// The padding behavior is bound into the function fields when the Collator
// is constructed, so per-row calls never branch on it.
type Collator struct {
	// Compare defaults to the binary comparison for Padding.
	Compare Compare
	// Equal defaults to the binary equality oracle for Padding when Compare is
	// also unset, and to Compare(a, b) != 0 otherwise.
	Equal EqualCompare
	// SortKey defaults to the binary sort key for Padding. A custom Compare
	// must come with a consistent SortKey.
	SortKey SortKey
	// AbbreviatedKey defaults to the first eight bytes of the sort key.
	AbbreviatedKey AbbreviatedKey
	// Hash defaults to the xxhash of the sort key.
	Hash Hash
	// FormatKey defaults to base.DefaultFormatter.
	FormatKey FormatKey

	// Padding is the pad attribute of the collation.
	Padding PadAttribute
	// ID is the MySQL collation ID.
	ID int32
	// Name is the collation name, e.g. "utf8mb4_bin". It must be set.
	Name string
}

// EnsureDefaults ensures that all function fields are set.
//
// If c is nil, returns DefaultCollator.
//
// If any fields need to be set, returns a modified copy of c.
func (c *Collator) EnsureDefaults() *Collator {
	if c == nil {
		return DefaultCollator
	}
	if c.Name == "" {
		panic("invalid Collator: mandatory field not set")
	}
	if c.Compare != nil && c.Equal != nil && c.SortKey != nil &&
		c.AbbreviatedKey != nil && c.Hash != nil && c.FormatKey != nil {
		return c
	}
	n := &Collator{}
	*n = *c
	n.fillDefaults()
	return n
}

// fillDefaults sets every unset function field of c from c.Padding.
func (c *Collator) fillDefaults() {
	if c.Compare == nil && c.Equal == nil {
		c.Compare = BinCollatorCompare(c.Padding)
		c.Equal = BinCollatorEqual(c.Padding)
	} else {
		if c.Compare == nil {
			c.Compare = BinCollatorCompare(c.Padding)
		}
		if c.Equal == nil {
			cmp := c.Compare
			c.Equal = func(a, b []byte) int {
				if cmp(a, b) == 0 {
					return 0
				}
				return 1
			}
		}
	}
	if c.SortKey == nil {
		c.SortKey = BinCollatorSortKey(c.Padding)
	}
	sortKey := c.SortKey
	if c.AbbreviatedKey == nil {
		c.AbbreviatedKey = func(key []byte) uint64 {
			return base.AbbreviateBigEndian(sortKey(key))
		}
	}
	if c.Hash == nil {
		c.Hash = func(key []byte) uint64 {
			return xxhash.Sum64(sortKey(key))
		}
	}
	if c.FormatKey == nil {
		c.FormatKey = base.DefaultFormatter
	}
}

// SafeFormat implements redact.SafeFormatter. Collation names are never
// sensitive.
func (c *Collator) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(c.Name))
}

// String implements fmt.Stringer.
func (c *Collator) String() string {
	return redact.StringWithoutMarkers(c)
}

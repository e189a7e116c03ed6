// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bincollate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownCollation is returned when a collation name or ID does not map to
// a registered Collator.
var ErrUnknownCollation = errors.New("bincollate: unknown collation")

// The built-in binary collations. IDs are the MySQL collation IDs and are
// part of the wire protocol; they should not be changed.
var (
	// Binary compares raw bytes; trailing spaces are significant.
	Binary = makeBinCollator("binary", 63, NoPad)
	// UTF8MB4Bin compares bytes with trailing spaces ignored.
	UTF8MB4Bin = makeBinCollator("utf8mb4_bin", 46, PadSpace)
	// UTF8Bin compares bytes with trailing spaces ignored.
	UTF8Bin = makeBinCollator("utf8_bin", 83, PadSpace)
	// ASCIIBin compares bytes with trailing spaces ignored.
	ASCIIBin = makeBinCollator("ascii_bin", 65, PadSpace)
	// Latin1Bin compares bytes with trailing spaces ignored.
	Latin1Bin = makeBinCollator("latin1_bin", 47, PadSpace)
)

// DefaultCollator is the collation used when none is specified.
var DefaultCollator = UTF8MB4Bin

var builtinCollators = []*Collator{Binary, UTF8MB4Bin, UTF8Bin, ASCIIBin, Latin1Bin}

func makeBinCollator(name string, id int32, pad PadAttribute) *Collator {
	c := &Collator{
		Compare: BinCollatorCompare(pad),
		Equal:   BinCollatorEqual(pad),
		SortKey: BinCollatorSortKey(pad),
		Padding: pad,
		ID:      id,
		Name:    name,
	}
	c.fillDefaults()
	return c
}

// Collators returns the built-in collators ordered by ID.
func Collators() []*Collator {
	cs := slices.Clone(builtinCollators)
	slices.SortFunc(cs, func(a, b *Collator) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return cs
}

// ByName returns the built-in collator with the given name. The lookup is
// case-insensitive.
func ByName(name string) (*Collator, error) {
	lower := strings.ToLower(name)
	for _, c := range builtinCollators {
		if c.Name == lower {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownCollation, "name %q", name)
}

// ByID returns the built-in collator with the given collation ID. Negative
// IDs, which clients send when the new collation framework is enabled, are
// mapped to their absolute value.
func ByID(id int32) (*Collator, error) {
	if id < 0 {
		id = -id
	}
	for _, c := range builtinCollators {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownCollation, "id %d", id)
}

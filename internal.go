// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bincollate

import "github.com/bincollate/bincollate/internal/base"

// Compare exports the base.Compare type.
type Compare = base.Compare

// EqualCompare exports the base.EqualCompare type.
type EqualCompare = base.EqualCompare

// SortKey exports the base.SortKey type.
type SortKey = base.SortKey

// AbbreviatedKey exports the base.AbbreviatedKey type.
type AbbreviatedKey = base.AbbreviatedKey

// Hash exports the base.Hash type.
type Hash = base.Hash

// FormatKey exports the base.FormatKey type.
type FormatKey = base.FormatKey

// Logger exports the base.Logger type.
type Logger = base.Logger

// DefaultLogger exports the base.DefaultLogger type.
type DefaultLogger = base.DefaultLogger

// Space is the padding byte.
const Space = base.Space

// Signum returns -1, 0 or +1 according to the sign of v.
func Signum[T base.Number](v T) int {
	return base.Signum(v)
}

// RawEqualCompare returns 0 if a and b are byte-for-byte identical and 1
// otherwise. Prefer it to RawCompare when ordering is not needed.
func RawEqualCompare(a, b []byte) int {
	return base.RawEqualCompare(a, b)
}

// RawCompare compares a and b lexicographically, returning -1, 0 or +1.
func RawCompare(a, b []byte) int {
	return base.RawCompare(a, b)
}

// RightTrimRaw returns v without trailing spaces, always scanning.
func RightTrimRaw(v []byte) []byte {
	return base.RightTrimRaw(v)
}

// RightTrim returns v without trailing spaces. It returns v itself without
// scanning when v is empty or does not end in a space.
func RightTrim(v []byte) []byte {
	return base.RightTrim(v)
}

// RightTrimNoEmpty is RightTrim for views known to be non-empty.
func RightTrimNoEmpty(v []byte) []byte {
	return base.RightTrimNoEmpty(v)
}

// RightTrimNoEmptyChecked is RightTrimNoEmpty with its precondition asserted
// in invariants builds.
func RightTrimNoEmptyChecked(v []byte) []byte {
	return base.RightTrimNoEmptyChecked(v)
}

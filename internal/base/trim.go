// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/bincollate/bincollate/internal/invariants"

// Space is the only byte treated as padding.
const Space = ' '

// RightTrimRaw returns v without its trailing spaces. It always scans
// backward from the end; an all-space view yields an empty view.
func RightTrimRaw(v []byte) []byte {
	i := len(v)
	for i > 0 && v[i-1] == Space {
		i--
	}
	return v[:i]
}

// RightTrim returns v without its trailing spaces. If v is empty or does not
// end in a space, v is returned unchanged without scanning.
func RightTrim(v []byte) []byte {
	if len(v) == 0 || v[len(v)-1] != Space {
		return v
	}
	return RightTrimRaw(v)
}

// RightTrimNoEmpty is RightTrim for a view already known to be non-empty. It
// reads the last byte unconditionally.
func RightTrimNoEmpty(v []byte) []byte {
	if v[len(v)-1] != Space {
		return v
	}
	return RightTrimRaw(v)
}

// RightTrimNoEmptyChecked is RightTrimNoEmpty with its precondition asserted
// in invariants builds.
func RightTrimNoEmptyChecked(v []byte) []byte {
	if invariants.Enabled && len(v) == 0 {
		panic(AssertionFailedf("RightTrimNoEmpty called on an empty view"))
	}
	return RightTrimNoEmpty(v)
}

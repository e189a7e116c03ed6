// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "golang.org/x/exp/constraints"

// Number is a constraint that permits any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signum returns -1, 0 or +1 according to the sign of v. NaN yields 0.
func Signum[T Number](v T) int {
	return b2i(0 < v) - b2i(v < 0)
}

//gcassert:inline
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines the primitives shared by the collators and the column
// operators: raw byte comparison, the equality oracle, trailing-space trimming
// and key formatting.
//
// # Views
//
// Every function in this package takes and returns views: []byte slices of
// memory owned by the caller. Nothing here copies, allocates or mutates the
// bytes it is handed, and a returned view always aliases its input. The caller
// must keep the underlying buffer immutable for as long as a derived view is
// live.
//
// # Padding
//
// Only the ASCII space (0x20) is treated as padding. Trimming is written so
// that the common case, a string that does not end in a space, costs a single
// byte comparison; the backward scan in [RightTrimRaw] is the cold path.
//
// # Checked and unchecked entry points
//
// [RightTrimNoEmpty] trusts its caller to have excluded the empty view.
// [RightTrimNoEmptyChecked] asserts the precondition in builds with the
// "invariants" or "race" tags and is otherwise identical.
package base

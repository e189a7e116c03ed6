// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package colcmp evaluates collated comparisons over packed string columns.
//
// Each function resolves the collator's comparison function and the
// operator once and then loops over the rows with no further dispatch: EQ
// and NE use the collator's equality oracle, which can reject strings of
// different lengths without reading them, and the ordering operators map
// the sign of a three-way comparison through a per-operator table.
//
// Results are written as one byte per row, 1 for true and 0 for false, into
// a caller-provided slice with at least as many elements as there are rows.
package colcmp

import (
	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/internal/invariants"
	"github.com/bincollate/bincollate/strcol"
	"github.com/cockroachdb/errors"
)

func checkResultLen(res []uint8, rows int) {
	if invariants.Enabled && len(res) < rows {
		panic(errors.AssertionFailedf("result has %d slots for %d rows", len(res), rows))
	}
}

// VectorVector compares a and b row by row: res[i] = a[i] op b[i]. The
// columns must have the same number of rows.
func VectorVector(c *bincollate.Collator, op Op, a, b strcol.Column, res []uint8) {
	checkResultLen(res, a.Rows())
	if op.equality() {
		eq := c.Equal
		// The oracle returns 0 on equality, so NE is its result and EQ the
		// complement.
		flip := uint8(0)
		if op == EQ {
			flip = 1
		}
		strcol.ForEachPairColumns(a, b, func(x, y []byte, i int) {
			res[i] = uint8(eq(x, y)) ^ flip
		})
		return
	}
	cmp, table := c.Compare, &accept[op]
	strcol.ForEachPairColumns(a, b, func(x, y []byte, i int) {
		res[i] = table[bincollate.Signum(cmp(x, y))+1]
	})
}

// VectorConstant compares every row of a with the constant b:
// res[i] = a[i] op b.
func VectorConstant(c *bincollate.Collator, op Op, a strcol.Column, b []byte, res []uint8) {
	checkResultLen(res, a.Rows())
	// The constant's sort key is computed once; comparing sort keys is
	// equivalent to comparing under the collation.
	sortKey, bKey := c.SortKey, c.SortKey(b)
	if op.equality() {
		flip := uint8(0)
		if op == EQ {
			flip = 1
		}
		a.ForEach(func(x []byte, i int) {
			res[i] = uint8(bincollate.RawEqualCompare(sortKey(x), bKey)) ^ flip
		})
		return
	}
	table := &accept[op]
	a.ForEach(func(x []byte, i int) {
		res[i] = table[bincollate.Signum(bincollate.RawCompare(sortKey(x), bKey))+1]
	})
}

// ConstantVector compares the constant a with every row of b:
// res[i] = a op b[i].
func ConstantVector(c *bincollate.Collator, op Op, a []byte, b strcol.Column, res []uint8) {
	VectorConstant(c, op.commute(), b, a, res)
}

// commute returns the operator o' such that (a o b) == (b o' a).
func (o Op) commute() Op {
	switch o {
	case LT:
		return GT
	case LE:
		return GE
	case GT:
		return LT
	case GE:
		return LE
	default:
		return o
	}
}

// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package colcmp

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Op is a SQL comparison operator.
type Op uint8

// The comparison operators.
const (
	EQ Op = iota
	NE
	LT
	LE
	GT
	GE
	numOps
)

var opNames = [numOps]string{
	EQ: "=",
	NE: "!=",
	LT: "<",
	LE: "<=",
	GT: ">",
	GE: ">=",
}

// accept maps an operator and the sign of a three-way comparison, offset by
// one, to the operator's result.
var accept = [numOps][3]uint8{
	EQ: {0, 1, 0},
	NE: {1, 0, 1},
	LT: {1, 0, 0},
	LE: {1, 1, 0},
	GT: {0, 0, 1},
	GE: {0, 1, 1},
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if o >= numOps {
		return "unknown"
	}
	return opNames[o]
}

// SafeFormat implements redact.SafeFormatter.
func (o Op) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(o.String()))
}

// equality returns true for the operators that only need the equality
// oracle.
func (o Op) equality() bool {
	return o == EQ || o == NE
}

// ParseOp parses an operator in SQL syntax. "<>" is accepted for NE.
func ParseOp(s string) (Op, error) {
	if s == "<>" {
		return NE, nil
	}
	for i, name := range opNames {
		if name == s {
			return Op(i), nil
		}
	}
	return 0, errors.Errorf("colcmp: unknown comparison operator %q", s)
}

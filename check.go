// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bincollate

import (
	"github.com/bincollate/bincollate/internal/base"
	"github.com/cockroachdb/errors"
)

// CheckCollator is a mini test suite that verifies a collator implementation
// over every pair of the given samples. It is recommended that the samples
// include the empty string, strings with trailing spaces and strings that
// differ only in trailing spaces.
func CheckCollator(c *Collator, samples [][]byte) error {
	for _, a := range samples {
		ka := c.SortKey(a)
		for _, b := range samples {
			kb := c.SortKey(b)
			result := c.Compare(a, b)
			if result < -1 || result > 1 {
				return errors.Errorf("%s: Compare('%s', '%s')=%d, expected -1, 0 or +1",
					c.Name, c.FormatKey(a), c.FormatKey(b), result)
			}
			if rev := c.Compare(b, a); rev != -result {
				return errors.Errorf("%s: Compare('%s', '%s')=%d but Compare('%s', '%s')=%d",
					c.Name, c.FormatKey(a), c.FormatKey(b), result, c.FormatKey(b), c.FormatKey(a), rev)
			}
			eq := c.Equal(a, b)
			if eq != 0 && eq != 1 {
				return errors.Errorf("%s: Equal('%s', '%s')=%d, expected 0 or 1",
					c.Name, c.FormatKey(a), c.FormatKey(b), eq)
			}
			if (result == 0) != (eq == 0) {
				return errors.Errorf("%s: Equal('%s', '%s') doesn't agree with Compare",
					c.Name, c.FormatKey(a), c.FormatKey(b))
			}
			if keyCmp := base.RawCompare(ka, kb); keyCmp != result {
				return errors.Errorf("%s: Compare('%s', '%s')=%d but sort keys compare %d",
					c.Name, c.FormatKey(a), c.FormatKey(b), result, keyCmp)
			}
			aa, ab := c.AbbreviatedKey(a), c.AbbreviatedKey(b)
			if (aa < ab && result >= 0) || (aa > ab && result <= 0) {
				return errors.Errorf("%s: AbbreviatedKey('%s')=%x, AbbreviatedKey('%s')=%x disagree with Compare=%d",
					c.Name, c.FormatKey(a), aa, c.FormatKey(b), ab, result)
			}
			if result == 0 && c.Hash(a) != c.Hash(b) {
				return errors.Errorf("%s: '%s' and '%s' are equal but hash differently",
					c.Name, c.FormatKey(a), c.FormatKey(b))
			}
		}
	}
	return nil
}

// MakeAssertCollator creates a Collator that is the same as the given
// Collator except that it asserts that Compare, Equal and SortKey agree with
// one another.
func MakeAssertCollator(c Collator) Collator {
	return Collator{
		Compare: func(a, b []byte) int {
			res := c.Compare(a, b)
			// Verify that Compare is consistent with the sort keys.
			if expected := base.RawCompare(c.SortKey(a), c.SortKey(b)); base.Signum(res) != expected {
				panic(base.AssertionFailedf("%s: Compare('%s', '%s')=%d, expected %d",
					c.Name, c.FormatKey(a), c.FormatKey(b), res, expected))
			}
			return res
		},

		Equal: func(a, b []byte) int {
			eq := c.Equal(a, b)
			// Verify that Equal is consistent with Compare.
			if expected := c.Compare(a, b); (eq == 0) != (expected == 0) {
				panic(base.AssertionFailedf("%s: Compare and Equal are not consistent", c.Name))
			}
			return eq
		},

		SortKey:        c.SortKey,
		AbbreviatedKey: c.AbbreviatedKey,
		Hash:           c.Hash,
		FormatKey:      c.FormatKey,
		Padding:        c.Padding,
		ID:             c.ID,
		Name:           c.Name,
	}
}

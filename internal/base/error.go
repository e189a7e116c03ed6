// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// AssertionFailedf creates an assertion error. It should be used when a state
// is detected that can only be the result of a broken caller contract.
var AssertionFailedf = errors.AssertionFailedf

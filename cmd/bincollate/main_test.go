// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/internal/testutils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestLookupCollation(t *testing.T) {
	c, err := lookupCollation("46")
	require.NoError(t, err)
	require.Same(t, bincollate.UTF8MB4Bin, c)
	c, err = lookupCollation("-63")
	require.NoError(t, err)
	require.Same(t, bincollate.Binary, c)
	c, err = lookupCollation("latin1_bin")
	require.NoError(t, err)
	require.Same(t, bincollate.Latin1Bin, c)
	_, err = lookupCollation("nope")
	require.True(t, errors.Is(err, bincollate.ErrUnknownCollation))
}

func TestRunCompare(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCompare(&buf, []string{"utf8mb4_bin", "ab", `"ab  "`}))
	require.Equal(t, `utf8mb4_bin (PAD SPACE)
compare("ab", "ab  ") = 0
equal("ab", "ab  ") = 0
`, buf.String())

	buf.Reset()
	require.NoError(t, runCompare(&buf, []string{"binary", "ab", `"ab  "`}))
	require.Equal(t, `binary (NO PAD)
compare("ab", "ab  ") = -1
equal("ab", "ab  ") = 1
`, buf.String())

	require.Error(t, runCompare(&buf, []string{"binary", `"unterminated`, "x"}))
}

func TestRunSortKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSortKey(&buf, []string{"utf8mb4_bin", `"ab  "`, `"ab"`}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], `"ab  " -> "ab" abbr=6162000000000000 hash=`))
	// Equal strings have equal hashes.
	hash := func(l string) string { return l[strings.Index(l, "hash="):] }
	require.Equal(t, hash(lines[0]), hash(lines[1]))
}

func TestRunSort(t *testing.T) {
	input := "b\na  \na\n\n \na\t\n"
	var buf bytes.Buffer
	require.NoError(t, runSort(strings.NewReader(input), &buf, bincollate.UTF8MB4Bin, false))
	require.Equal(t, "\n \na  \na\na\t\nb\n", buf.String())

	buf.Reset()
	require.NoError(t, runSort(strings.NewReader(input), &buf, bincollate.UTF8MB4Bin, true))
	require.Equal(t, "\na  \na\t\nb\n", buf.String())

	buf.Reset()
	require.NoError(t, runSort(strings.NewReader(input), &buf, bincollate.Binary, true))
	require.Equal(t, "\n \na\na\t\na  \nb\n", buf.String())
}

func TestRunCollations(t *testing.T) {
	var buf bytes.Buffer
	runCollations(&buf)
	out := buf.String()
	for _, c := range bincollate.Collators() {
		require.Contains(t, out, c.Name)
	}
	require.Contains(t, out, "PAD SPACE")
	require.Contains(t, out, "NO PAD")
}

func TestRunBench(t *testing.T) {
	saved := benchConfig
	defer func() { benchConfig = saved }()
	benchConfig.concurrency = 2
	benchConfig.duration = 50 * time.Millisecond
	benchConfig.rows = 64
	benchConfig.maxLen = 8
	benchConfig.maxPad = 2
	benchConfig.op = "="
	benchConfig.seed = 7

	savedLogger, savedVerbose := logger, verbose
	defer func() { logger, verbose = savedLogger, savedVerbose }()
	l := &testutils.Logger{T: t}
	logger, verbose = l, true

	var buf bytes.Buffer
	require.NoError(t, runBench(context.Background(), &buf, bincollate.UTF8MB4Bin))
	out := buf.String()
	require.Contains(t, out, "utf8mb4_bin/=")
	require.Contains(t, out, "compared ")
	require.Contains(t, l.String(), "collation utf8mb4_bin (PAD SPACE), op =")
	require.Contains(t, out, "bincollate_bench_rows_compared_total")
	require.Contains(t, out, "bincollate_bench_pass_duration_seconds")

	benchConfig.op = "~"
	require.Error(t, runBench(context.Background(), &buf, bincollate.UTF8MB4Bin))
	benchConfig.op = "<"
	benchConfig.rows = 0
	require.Error(t, runBench(context.Background(), &buf, bincollate.UTF8MB4Bin))
}

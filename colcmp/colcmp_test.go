// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package colcmp

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/strcol"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func parseQuoted(t *testing.T, line string) []string {
	var res []string
	for line = strings.TrimSpace(line); line != ""; line = strings.TrimSpace(line) {
		q, err := strconv.QuotedPrefix(line)
		require.NoError(t, err)
		s, err := strconv.Unquote(q)
		require.NoError(t, err)
		res = append(res, s)
		line = line[len(q):]
	}
	return res
}

// parseComparison parses a line of the form `"a" <op> "b"`.
func parseComparison(t *testing.T, line string) (a string, op Op, b string, err error) {
	q, err := strconv.QuotedPrefix(line)
	require.NoError(t, err)
	a, err = strconv.Unquote(q)
	require.NoError(t, err)
	rest := strings.TrimSpace(line[len(q):])
	opStr, rest, ok := strings.Cut(rest, " ")
	require.True(t, ok, "malformed comparison %q", line)
	args := parseQuoted(t, rest)
	require.Len(t, args, 1)
	op, err = ParseOp(opStr)
	return a, op, args[0], err
}

func makeColumn(strs ...string) strcol.Column {
	var b strcol.Builder
	for _, s := range strs {
		b.PutString(s)
	}
	return b.Finish()
}

func TestColcmpDataDriven(t *testing.T) {
	var out bytes.Buffer
	datadriven.RunTest(t, "testdata/colcmp", func(t *testing.T, td *datadriven.TestData) string {
		out.Reset()
		var name string
		td.ScanArgs(t, "collation", &name)
		c, err := bincollate.ByName(name)
		require.NoError(t, err)

		switch td.Cmd {
		case "compare":
			for _, line := range crstrings.Lines(td.Input) {
				a, op, b, err := parseComparison(t, line)
				if err != nil {
					fmt.Fprintf(&out, "%s\n", err)
					continue
				}
				res := make([]uint8, 1)
				VectorVector(c, op, makeColumn(a), makeColumn(b), res)
				fmt.Fprintf(&out, "%q %s %q: %t\n", a, op, b, res[0] == 1)
			}
		case "sort":
			var strs []string
			for _, line := range crstrings.Lines(td.Input) {
				strs = append(strs, parseQuoted(t, line)...)
			}
			col := makeColumn(strs...)
			for _, i := range SortPermutation(c, col) {
				fmt.Fprintf(&out, "%d: %q\n", i, col.At(i))
			}
		case "group":
			var strs []string
			for _, line := range crstrings.Lines(td.Input) {
				strs = append(strs, parseQuoted(t, line)...)
			}
			ids, groups := Group(c, makeColumn(strs...))
			for i, s := range strs {
				fmt.Fprintf(&out, "%q: group %d\n", s, ids[i])
			}
			fmt.Fprintf(&out, "%d groups\n", groups)
		default:
			panic(fmt.Sprintf("unrecognized command %q", td.Cmd))
		}
		return out.String()
	})
}

func TestParseOp(t *testing.T) {
	for o := EQ; o < numOps; o++ {
		parsed, err := ParseOp(o.String())
		require.NoError(t, err)
		require.Equal(t, o, parsed)
	}
	op, err := ParseOp("<>")
	require.NoError(t, err)
	require.Equal(t, NE, op)
	_, err = ParseOp("=>")
	require.Error(t, err)
	require.Equal(t, "unknown", Op(200).String())
}

func randString(rng *rand.Rand) string {
	const alphabet = "  ab\x00"
	b := make([]byte, rng.IntN(5))
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}

// TestOpsAgainstCompare checks every operator and every entry point against
// the collator's scalar Compare.
func TestOpsAgainstCompare(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(0, seed))

	const rows = 500
	as, bs := make([]string, rows), make([]string, rows)
	for i := range as {
		as[i], bs[i] = randString(rng), randString(rng)
	}
	a, b := makeColumn(as...), makeColumn(bs...)
	constant := randString(rng)

	want := func(op Op, cmp int) uint8 {
		var r bool
		switch op {
		case EQ:
			r = cmp == 0
		case NE:
			r = cmp != 0
		case LT:
			r = cmp < 0
		case LE:
			r = cmp <= 0
		case GT:
			r = cmp > 0
		case GE:
			r = cmp >= 0
		}
		if r {
			return 1
		}
		return 0
	}

	for _, c := range bincollate.Collators() {
		for op := EQ; op < numOps; op++ {
			vv := make([]uint8, rows)
			vc := make([]uint8, rows)
			cv := make([]uint8, rows)
			VectorVector(c, op, a, b, vv)
			VectorConstant(c, op, a, []byte(constant), vc)
			ConstantVector(c, op, []byte(constant), b, cv)
			for i := 0; i < rows; i++ {
				x, y := []byte(as[i]), []byte(bs[i])
				k := []byte(constant)
				require.Equal(t, want(op, c.Compare(x, y)), vv[i], "%s: %q %s %q", c, x, op, y)
				require.Equal(t, want(op, c.Compare(x, k)), vc[i], "%s: %q %s %q", c, x, op, k)
				require.Equal(t, want(op, c.Compare(k, y)), cv[i], "%s: %q %s %q", c, k, op, y)
			}
		}
	}
}

func TestSortPermutationMatchesCompare(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, uint64(time.Now().UnixNano())))
	strs := make([]string, 300)
	for i := range strs {
		strs[i] = randString(rng)
	}
	col := makeColumn(strs...)
	for _, c := range bincollate.Collators() {
		perm := SortPermutation(c, col)
		require.Len(t, perm, len(strs))
		for i := 1; i < len(perm); i++ {
			cmp := c.Compare(col.At(perm[i-1]), col.At(perm[i]))
			require.LessOrEqual(t, cmp, 0)
			if cmp == 0 {
				// Stable.
				require.Less(t, perm[i-1], perm[i])
			}
		}
	}
}

func TestHashesAndGroup(t *testing.T) {
	col := makeColumn("ab", "ab  ", "ba", "", "   ", "ab ")
	hashes := Hashes(bincollate.UTF8MB4Bin, col, nil)
	require.Len(t, hashes, 6)
	require.Equal(t, hashes[0], hashes[1])
	require.Equal(t, hashes[0], hashes[5])
	require.Equal(t, hashes[3], hashes[4])
	require.NotEqual(t, hashes[0], hashes[2])

	ids, groups := Group(bincollate.UTF8MB4Bin, col)
	require.Equal(t, []uint32{0, 0, 1, 2, 2, 0}, ids)
	require.Equal(t, 3, groups)

	ids, groups = Group(bincollate.Binary, col)
	require.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, ids)
	require.Equal(t, 6, groups)

	keys := SortKeys(bincollate.UTF8MB4Bin, col, nil)
	require.Equal(t, []string{"ab", "ab", "ba", "", "", "ab"}, func() []string {
		var s []string
		for _, k := range keys {
			s = append(s, string(k))
		}
		return s
	}())
}

func BenchmarkVectorVector(b *testing.B) {
	rng := rand.New(rand.NewPCG(0, 1449168817))
	const rows = 4096
	as, bs := make([]string, rows), make([]string, rows)
	for i := range as {
		as[i] = strings.Repeat("x", rng.IntN(16)) + strings.Repeat(" ", rng.IntN(3))
		bs[i] = strings.Repeat("x", rng.IntN(16)) + strings.Repeat(" ", rng.IntN(3))
	}
	x, y := makeColumn(as...), makeColumn(bs...)
	res := make([]uint8, rows)
	for _, c := range []*bincollate.Collator{bincollate.Binary, bincollate.UTF8MB4Bin} {
		for _, op := range []Op{EQ, LT} {
			b.Run(fmt.Sprintf("%s/%s", c, op), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					VectorVector(c, op, x, y, res)
				}
			})
		}
	}
}

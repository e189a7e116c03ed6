// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bincollate/bincollate"
	"github.com/bincollate/bincollate/colcmp"
	"github.com/bincollate/bincollate/strcol"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <collation> <a> <b>",
	Short: "compare two strings under a collation",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd.OutOrStdout(), args)
	},
}

var sortKeyCmd = &cobra.Command{
	Use:   "sortkey <collation> <string>...",
	Short: "print the sort keys of strings under a collation",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSortKey(cmd.OutOrStdout(), args)
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort <collation> [file]",
	Short: "sort lines under a collation",
	Long: `
Reads lines from the file, or from stdin if no file is given, and prints them
in collation order. Lines that compare equal keep their input order.
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupCollation(args[0])
		if err != nil {
			return err
		}
		in := cmd.InOrStdin()
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return runSort(in, cmd.OutOrStdout(), c, distinct)
	},
}

var collationsCmd = &cobra.Command{
	Use:   "collations",
	Short: "list the built-in collations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCollations(cmd.OutOrStdout())
	},
}

// lookupCollation resolves a collation by ID or by name.
func lookupCollation(s string) (*bincollate.Collator, error) {
	if id, err := strconv.ParseInt(s, 10, 32); err == nil {
		return bincollate.ByID(int32(id))
	}
	return bincollate.ByName(s)
}

// parseArg returns the bytes of a command line argument, unquoting it if it
// is a Go string literal.
func parseArg(s string) ([]byte, error) {
	if !strings.HasPrefix(s, `"`) {
		return []byte(s), nil
	}
	u, err := strconv.Unquote(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s)
	}
	return []byte(u), nil
}

func runCompare(w io.Writer, args []string) error {
	c, err := lookupCollation(args[0])
	if err != nil {
		return err
	}
	a, err := parseArg(args[1])
	if err != nil {
		return err
	}
	b, err := parseArg(args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s)\n", c, c.Padding)
	fmt.Fprintf(w, "compare(%q, %q) = %d\n", a, b, c.Compare(a, b))
	fmt.Fprintf(w, "equal(%q, %q) = %d\n", a, b, c.Equal(a, b))
	return nil
}

func runSortKey(w io.Writer, args []string) error {
	c, err := lookupCollation(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		s, err := parseArg(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%q -> %q abbr=%016x hash=%016x\n",
			s, c.SortKey(s), c.AbbreviatedKey(s), c.Hash(s))
	}
	return nil
}

func runSort(r io.Reader, w io.Writer, c *bincollate.Collator, distinct bool) error {
	var b strcol.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for scanner.Scan() {
		b.Put(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	col := b.Finish()

	var ids []uint32
	var seen []bool
	if distinct {
		var groups int
		ids, groups = colcmp.Group(c, col)
		seen = make([]bool, groups)
	}
	perm := colcmp.SortPermutation(c, col)

	bw := bufio.NewWriter(w)
	printed := 0
	for _, i := range perm {
		if distinct {
			if seen[ids[i]] {
				continue
			}
			seen[ids[i]] = true
		}
		bw.Write(col.At(i))
		bw.WriteByte('\n')
		printed++
	}
	if verbose {
		logger.Infof("sorted %d lines under %s, printed %d", col.Rows(), c, printed)
	}
	return bw.Flush()
}

func runCollations(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"id", "name", "padding"})
	for _, c := range bincollate.Collators() {
		tw.Append([]string{strconv.Itoa(int(c.ID)), c.Name, c.Padding.String()})
	}
	tw.Render()
}

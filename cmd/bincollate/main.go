// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"
	"time"

	"github.com/bincollate/bincollate"
	"github.com/spf13/cobra"
)

var (
	distinct bool
	verbose  bool
)

var logger bincollate.Logger = bincollate.DefaultLogger{}

var rootCmd = &cobra.Command{
	Use:   "bincollate [command] (flags)",
	Short: "binary collation introspection/benchmarking tool",
	Long: `
Arguments that start with a double quote are parsed as Go string literals,
so trailing spaces and non-printable bytes can be given explicitly:

  bincollate compare utf8mb4_bin '"ab"' '"ab  "'

Collations may be named (utf8mb4_bin) or given by ID (46).
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		compareCmd,
		sortKeyCmd,
		sortCmd,
		collationsCmd,
		benchCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable verbose logging")

	sortCmd.Flags().BoolVar(
		&distinct, "distinct", false, "print one line per group of lines equal under the collation")

	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 1, "number of concurrent workers")
	benchCmd.Flags().DurationVarP(
		&benchConfig.duration, "duration", "d", 10*time.Second, "the duration to run")
	benchCmd.Flags().IntVar(
		&benchConfig.rows, "rows", 4096, "number of rows in each generated column")
	benchCmd.Flags().IntVar(
		&benchConfig.maxLen, "max-len", 32, "maximum length of generated strings, excluding padding")
	benchCmd.Flags().IntVar(
		&benchConfig.maxPad, "max-pad", 4, "maximum number of trailing spaces on generated strings")
	benchCmd.Flags().StringVar(
		&benchConfig.op, "op", "<", "comparison operator to evaluate (=, !=, <, <=, >, >=)")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed for generated strings")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

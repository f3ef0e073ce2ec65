package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pCount, pSeed = uint(2e5), uint64(0)
var pOutput, pNoCodesDefault = "", false
var pHelp, pBench, pStats, pNoCodes, pQuiet, pDebug bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

// parseFlags fills the p* variables from args, which excludes the program name. Formatting codes
// are resolved before the help text is built so that usage strings honour --no-codes.
func parseFlags(args []string) (*FlagSet, error) {
	pNoCodes = pNoCodesDefault
	for _, arg := range args {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	fs := NewFlagSet("statz", ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	fs.BoolVarP(&pBench, "bench", "b", false,
		purp+"run throughput benchmarks"+zero)

	fs.UintVarP(&pCount, "count", "n", pCount,
		purp+"samples drawn per statistical test"+zero)

	fs.BoolVar(&pDebug, "debug", false, "")
	_ = fs.MarkHidden("debug")

	fs.Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes"+zero)

	fs.StringVarP(&pOutput, "output", "o", "",
		purp+"also write the report to PATH"+zero)

	fs.Bool("quiet", false,
		purp+"suppress everything but errors and the report"+zero+
			n+"(enables --no-codes)")

	fs.Uint64Var(&pSeed, "seed", 0,
		purp+"key for the ChaCha stream that generates test inputs"+zero)

	fs.BoolVarP(&pStats, "stats", "s", false,
		purp+"run statistical tests"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	fs.SortFlags = false
	if err := fs.Parse(args); err != nil {
		return fs, err
	}
	if !pBench && !pStats {
		pBench, pStats = true, true
	}
	return fs, nil
}

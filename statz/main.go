// Command statz measures the building blocks of stepnhash: the monobit and bucket bias of the
// javarand generator, the symbol spread of finished tokens, and the throughput of the legacy
// checksum next to sha256-simd, BLAKE3 and XXH3. Inputs come from a seeded ChaCha20 stream, so
// runs are reproducible.
package main

import (
	"errors"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/vainpath"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

func main() { os.Exit(program(os.Args[1:])) }

// help prints a usage menu. To consistently render this menu in most terminal windows, its content
// should be no wider than 80 columns.
func help(fs *pflag.FlagSet) {
	origin, err := os.Executable()
	if err != nil {
		origin = "statz" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Statistics and benchmarks for the stepnhash pipeline.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bs] [-n <uint>] [--seed <uint>] [-o PATH] [--quiet|no-codes]"+n+n+
			"Options:"+n)
	fs.PrintDefaults()
	Fprint(os.Stderr, n+"With neither -b nor -s, both suites run."+n)
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case pDebug:
		level = zerolog.DebugLevel
	case pQuiet:
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: pNoCodes, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func program(args []string) int {
	fs, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) || pHelp {
		help(fs)
		return success
	}
	log := newLogger()
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return invalid
	}
	if pCount == 0 {
		log.Error().Msg("--count must be at least 1")
		return invalid
	}

	var w io.Writer = os.Stdout
	if pOutput != "" {
		file, err := os.Create(pOutput)
		if err != nil {
			log.Error().Err(err).Str("path", pOutput).Msg("cannot create report")
			return failure
		}
		defer file.Close()
		w = io.MultiWriter(os.Stdout, file)
	}

	src := newSource(pSeed)
	log.Debug().Uint64("seed", pSeed).Uint("count", pCount).Bool("stats", pStats).
		Bool("bench", pBench).Msg("starting")
	Fprintf(w, "Running Statz on %d CPUs!\n%s/%s (%s)\n\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, features())
	t := time.Now()

	if pStats {
		statTests(w, src, pCount)
	}
	if pBench {
		if calltime == 0 {
			log.Warn().Msg("TSC unavailable; cycles per byte will not be reported")
		}
		benchmarks(w, src)
	}

	Fprintln(w, "Finished in "+time.Since(t).Truncate(time.Millisecond).String()+".")
	if pOutput != "" {
		log.Info().Str("path", vainpath.Simplify(pOutput)).Msg("report written")
	}
	return success
}

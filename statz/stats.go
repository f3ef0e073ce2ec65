package main

import (
	. "fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/p7r0x7/stepnhash"
	"github.com/p7r0x7/stepnhash/bitpack"
	"github.com/p7r0x7/stepnhash/hashcode"
	"github.com/p7r0x7/stepnhash/javarand"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// monobit tallies set bits at each of the low ln positions over count draws and returns the mean
// absolute bias as a percentage, together with the positions that never changed.
func monobit(draw func() uint32, ln int, count uint) (float64, []int) {
	tally := make([]int64, ln)
	for i := count; i > 0; i-- {
		v := draw()
		for b := 0; b < ln; b++ {
			tally[b] += int64(v >> b & 1)
		}
	}
	var total float64
	var stuck []int
	half := float64(count) / 2
	for b, t := range tally {
		if t == 0 || t == int64(count) {
			stuck = append(stuck, b)
		}
		total += math.Abs(float64(t) - half)
	}
	return total / float64(ln) / half * 100, stuck
}

// boundBias draws count values from NextBound(bound), buckets them into equal-width ranges and
// returns the largest relative deviation of any bucket from a uniform share, as a percentage.
func boundBias(r *javarand.Rand, bound uint32, buckets int, count uint) float64 {
	hist := make([]float64, buckets)
	for i := count; i > 0; i-- {
		hist[uint64(r.NextBound(bound))*uint64(buckets)/uint64(bound)]++
	}
	var worst float64
	expect := float64(count) / float64(buckets)
	for _, h := range hist {
		worst = math.Max(worst, math.Abs(h-expect)/expect*100)
	}
	return worst
}

// symbols tallies alphabet symbols over count tokens for generated credentials at a fixed instant
// and returns the chi-squared statistic against a uniform distribution and the unused symbols.
func symbols(src *source, count uint) (float64, string) {
	h, at := stepnhash.New(), time.UnixMilli(1657992108586)
	var tally [64]float64
	var total float64
	for i := count; i > 0; i-- {
		tok := h.HashAt(src.email(), src.word(6, 20), at)
		for j := 0; j < len(tok); j++ {
			tally[strings.IndexByte(bitpack.Alphabet, tok[j])]++
		}
		total += float64(len(tok))
	}
	var chi float64
	var unused []byte
	expect := total / 64
	for i, t := range tally {
		chi += (t - expect) * (t - expect) / expect
		if t == 0 {
			unused = append(unused, bitpack.Alphabet[i])
		}
	}
	return chi, string(unused)
}

func statTests(w io.Writer, src *source, count uint) {
	seed := uint64(hashcode.Sum(src.email()))
	Fprintf(w, "%sjavarand%s seeded with %d, %d samples per test\n", yell, zero, seed, count)

	r := javarand.New(seed)
	bias, stuck := monobit(r.Uint32, 32, count)
	Fprintf(w, "Next(32) monobit bias:        %6.3f%%  stuck bits %v\n", bias, stuck)
	bias, stuck = monobit(func() uint32 { return r.Next(31) }, 31, count)
	Fprintf(w, "Next(31) monobit bias:        %6.3f%%  stuck bits %v\n", bias, stuck)

	for _, bound := range [...]uint32{78, 1 << 30, 3 << 29} {
		Fprintf(w, "NextBound(%-10d) bucket bias: %6.3f%%\n", bound, boundBias(r, bound, 16, count))
	}

	chi, unused := symbols(src, count/100+1)
	Fprintf(w, "token symbol chi-squared:     %9.1f  unused %q\n\n", chi, unused)
}

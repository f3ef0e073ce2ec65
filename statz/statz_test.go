package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/p7r0x7/stepnhash/javarand"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestParseFlags(t *testing.T) {
	if _, err := parseFlags([]string{"--no-codes", "-n", "500", "--seed", "9", "-s"}); err != nil {
		t.Fatal(err)
	}
	if pCount != 500 || pSeed != 9 || !pStats || pBench || !pNoCodes || yell != "" {
		t.Errorf("count=%d seed=%d stats=%v bench=%v no-codes=%v", pCount, pSeed, pStats, pBench, pNoCodes)
	}

	pStats, pBench = false, false
	if _, err := parseFlags([]string{"--no-codes"}); err != nil {
		t.Fatal(err)
	}
	if !pStats || !pBench {
		t.Error("with neither -b nor -s, both suites should run")
	}

	if _, err := parseFlags([]string{"--no-codes", "--count=x"}); err == nil {
		t.Error("--count=x parsed without error")
	}
}

func TestFmtFloats(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{1, "         1"},
		{1.5, "  1.500000"},
		{2048.25, "  2048.250"},
		{3e9, "     3e+09"},
	} {
		if got := fmtFloats(tc.in); got != tc.want {
			t.Errorf("fmtFloats(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMonobit(t *testing.T) {
	flip := uint32(0)
	bias, stuck := monobit(func() uint32 { flip = ^flip; return flip }, 32, 1000)
	if bias != 0 || len(stuck) != 0 {
		t.Errorf("alternating draws: bias %v, stuck %v", bias, stuck)
	}
	bias, stuck = monobit(func() uint32 { return 0 }, 8, 10)
	if bias != 100 || len(stuck) != 8 {
		t.Errorf("constant draws: bias %v, stuck %v", bias, stuck)
	}
	/* Next(32) is masked to 31 bits, so bit 31 never moves. */
	r := javarand.New(1)
	_, stuck = monobit(r.Uint32, 32, 2000)
	if len(stuck) != 1 || stuck[0] != 31 {
		t.Errorf("Uint32 stuck bits = %v, want [31]", stuck)
	}
}

func TestBoundBias(t *testing.T) {
	/* One bucket per value means every draw lands in range. */
	if b := boundBias(javarand.New(3), 4, 4, 4000); b >= 100 {
		t.Errorf("boundBias(4) = %v", b)
	}
}

func TestSource(t *testing.T) {
	a, b := newSource(7), newSource(7)
	if x, y := a.uint64(), b.uint64(); x != y {
		t.Fatalf("same seed diverged: %#x vs %#x", x, y)
	}
	if newSource(7).uint64() == newSource(8).uint64() {
		t.Error("different seeds produced the same first word")
	}
	for i := 0; i < 100; i++ {
		e := string(a.email())
		if !strings.Contains(e, "@") || !strings.HasSuffix(e, ".com") {
			t.Fatalf("email() = %q", e)
		}
		if w := a.word(6, 20); len(w) < 6 || len(w) > 20 {
			t.Fatalf("word(6, 20) has length %d", len(w))
		}
	}
}

func TestStatTests(t *testing.T) {
	yell, zero = "", ""
	var out bytes.Buffer
	statTests(&out, newSource(1), 1000)
	for _, want := range []string{"Next(32) monobit", "stuck bits [31]", "NextBound(78", "chi-squared"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report lacks %q:\n%s", want, out.String())
		}
	}
}

func TestFeatures(t *testing.T) {
	if features() == "" {
		t.Error("features() is empty")
	}
}

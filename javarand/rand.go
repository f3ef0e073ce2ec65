// Package javarand reproduces the 48-bit linear congruential generator of java.util.Random, quirks
// included, together with the Fisher-Yates shuffle that the token pipeline drives with it.
//
// It departs from the textbook generator in two ways:
//
//   - New does not mask the scrambled seed to 48 bits; only the multiplier is masked.
//   - NextBound takes a single draw modulo the bound when the bound is not a power of two, with
//     no rejection of the biased tail.
//
// A Rand is not safe for concurrent use. Its draws depend on strictly sequential state updates, so
// every goroutine needs its own instance.
package javarand

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	Multiplier uint64 = 0x5deece66d
	Addend     uint64 = 0xb
	Mask       uint64 = 1<<48 - 1
)

type Rand struct {
	state uint64
}

// Scramble is the initial state transformation applied to a seed. The mask binds to Multiplier
// alone, so seeds wider than 48 bits pass their upper bits through untouched.
func Scramble(seed uint64) uint64 { return seed ^ Multiplier&Mask }

// New returns a generator whose state is Scramble(seed).
func New(seed uint64) *Rand { return &Rand{state: Scramble(seed)} }

// State returns the current generator state.
func (r *Rand) State() uint64 { return r.state }

// Next advances the generator and returns the top bits of the new state, always masked to 31 bits
// even when all 32 are requested.
func (r *Rand) Next(bits uint) uint32 {
	if bits < 1 || bits > 32 {
		panic("javarand: Next: bits must be in [1, 32]")
	}
	r.state = (r.state*Multiplier + Addend) & Mask
	return uint32(r.state >> (48 - bits) & 0x7fffffff)
}

func (r *Rand) Int31() int32 { return int32(r.Next(31)) }

// Uint32 is Next(32). The result never has its top bit set.
func (r *Rand) Uint32() uint32 { return r.Next(32) }

// NextBound returns a value in [0, bound) from exactly one draw.
func (r *Rand) NextBound(bound uint32) uint32 {
	if bound == 0 {
		panic("javarand: NextBound: bound must be positive")
	}
	n := r.Next(31)
	if bound&(bound-1) == 0 {
		return uint32(uint64(n) * uint64(bound) >> 31)
	}
	return n % bound
}

package javarand

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Shuffle permutes n elements in place, walking from the last index down to 1 and swapping each
// with an index drawn by r.NextBound. The permutation is a pure function of r's draw sequence.
func Shuffle(r *Rand, n int, swap func(i, j int)) {
	if n < 0 {
		panic("javarand: Shuffle: negative length")
	}
	for i := n - 1; i > 0; i-- {
		swap(i, int(r.NextBound(uint32(i+1))))
	}
}

// ShuffleBytes is Shuffle specialised for byte slices.
func (r *Rand) ShuffleBytes(b []byte) {
	for i := len(b) - 1; i > 0; i-- {
		j := r.NextBound(uint32(i + 1))
		b[i], b[j] = b[j], b[i]
	}
}

// Perm returns the shuffled sequence 0, 1, …, n-1.
func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	Shuffle(r, n, func(i, j int) { m[i], m[j] = m[j], m[i] })
	return m
}

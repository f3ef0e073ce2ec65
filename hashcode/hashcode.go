// Package hashcode implements the legacy 31-bit checksum used to seed javarand from an account's
// email address. It is a weak, non-cryptographic digest.
package hashcode

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	Initial    uint64 = 17
	Multiplier uint64 = 37
	Mask       uint64 = 0x7fffffff
)

// Sum64 returns the full, unmasked accumulator for data. All arithmetic wraps modulo 2^64.
func Sum64(data []byte) uint64 {
	acc := Initial
	for _, b := range data {
		/* 36 self-additions of the accumulator wrap exactly like a multiply by 37. */
		acc = acc*Multiplier + uint64(b)
	}
	return acc
}

// Sum returns the low 31 bits of Sum64, so the result always lies in [0, 2^31-1].
func Sum(data []byte) uint32 {
	return uint32(Sum64(data) & Mask)
}

// String is Sum for string input.
func String(s string) uint32 {
	acc := Initial
	for i := 0; i < len(s); i++ {
		acc = acc*Multiplier + uint64(s[i])
	}
	return uint32(acc & Mask)
}

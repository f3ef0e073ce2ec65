package bitpack

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Reader addresses Data as a little-endian bit stream: bit k is bit k%8 of byte k/8.
type Reader struct {
	Data []byte
}

func (r Reader) Bits() uint { return uint(len(r.Data)) << 3 }

// Window returns the width bits starting at offset, with the bit at offset in position 0. Bits past
// the end of Data read as zero. Width must not exceed 8 and offset must lie inside Data.
func (r Reader) Window(offset, width uint) byte {
	if width > 8 {
		panic("bitpack: Window: width exceeds 8 bits")
	}
	i, shift := offset>>3, offset&7
	v := uint(r.Data[i]) >> shift
	if shift+width > 8 && i+1 < uint(len(r.Data)) {
		v |= uint(r.Data[i+1]) << (8 - shift)
	}
	return byte(v & (1<<width - 1))
}

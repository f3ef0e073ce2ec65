// Package bitpack renders byte strings as text over a fixed 64-symbol alphabet, six bits per
// symbol. Bits are numbered from the least-significant bit of the first byte, so a window that
// straddles two bytes takes its low bits from the top of the first byte and its high bits from the
// bottom of the next. The final window is short when the input length is not a multiple of three;
// missing bits count as zero and no padding is ever emitted.
//
// There is no decoder.
package bitpack

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const Alphabet = "fUi7oEd)IyZcPQlzHDnARm5thFwJKqjgrX2b8VWaOCY9pM!e3TsvkBxNu614LS0G"

const width = 6

// EncodedLen returns the length of the encoding of n bytes: ceil(8n/6).
func EncodedLen(n int) int { return (n*8 + width - 1) / width }

// AppendEncode appends the encoding of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	r := Reader{Data: src}
	for off, end := uint(0), r.Bits(); off < end; off += width {
		dst = append(dst, Alphabet[r.Window(off, width)])
	}
	return dst
}

func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

package main

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const letters = "abcdefghijklmnopqrstuvwxyz0123456789"

// source is a reproducible byte stream: the ChaCha20 keystream under a key derived from a seed.
// Test inputs are drawn from it so that two runs with the same --seed see the same inputs.
type source struct {
	stream *chacha.Cipher
}

func newSource(seed uint64) *source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	stream, err := chacha.NewCipher(make([]byte, chacha.NonceSize), key[:], 20)
	if err != nil {
		panic(err) /* Only reachable with malformed key or nonce sizes. */
	}
	return &source{stream}
}

func (s *source) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

func (s *source) uint64() uint64 {
	var b [8]byte
	s.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// word returns between lo and hi characters drawn from letters.
func (s *source) word(lo, hi int) []byte {
	b := make([]byte, lo+int(s.uint64()%uint64(hi-lo+1)))
	s.Read(b)
	for i := range b {
		b[i] = letters[int(b[i])%len(letters)]
	}
	return b
}

func (s *source) email() []byte {
	e := append(s.word(3, 16), '@')
	e = append(e, s.word(3, 10)...)
	return append(e, ".com"...)
}

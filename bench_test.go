package stepnhash

import (
	"testing"
	"time"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func BenchmarkHashAt(b *testing.B) {
	h, t := New(), time.UnixMilli(stamp)
	email, password := []byte("fghfgh@ggg.ggf"), []byte("123456")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.HashAt(email, password, t)
	}
}

func BenchmarkEncodeWithSeed(b *testing.B) {
	msg := make([]byte, 78)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeWithSeed(msg, 1997399150)
	}
}

func BenchmarkSHA256(b *testing.B) {
	msg := []byte("123456" + Salt)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha256.Sum256(msg)
	}
}

func BenchmarkBlake3(b *testing.B) {
	msg := []byte("123456" + Salt)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blake3.Sum256(msg)
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := []byte("123456" + Salt)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}

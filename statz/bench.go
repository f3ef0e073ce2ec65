package main

import (
	. "fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/stepnhash"
	"github.com/p7r0x7/stepnhash/hashcode"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 512 << 10, 64 << 20}
var msg, calltime = []byte(nil), gotsc.TSCOverhead()

var algs = [...]struct {
	name string
	fn   func(b *testing.B)
}{
	{"github.com/p7r0x7/stepnhash/hashcode", benchHashcode},
	{"github.com/minio/sha256-simd", benchSHA256},
	{"github.com/zeebo/blake3", benchBlake3},
	{"github.com/zeebo/xxh3", benchXXH3},
}

func benchHashcode(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		hashcode.Sum(msg)
	}
}

func benchSHA256(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(msg)
	}
}

func benchBlake3(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(msg)
	}
}

func benchXXH3(b *testing.B) {
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(msg)
	}
}

// benchAlg runs alg once per entry of sizes, sampling the TSC in the background to estimate
// cycles per byte where the counter is usable.
func benchAlg(w io.Writer, src *source, alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		msg = make([]byte, v)
		src.Read(msg)

		totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		close(done)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		}
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
		mut.Unlock()
	}

	Fprintln(w, "Speed "+fmtFloats(throughputs...)+"   MB/s")
	if calltime > 0 {
		Fprintln(w, "      "+fmtFloats(speeds...)+"   cpb")
	}
	Fprint(w, "Usage "+fmtFloats(usages...)+"   B/op"+n+n)
}

// benchTokens reports whole-pipeline latency, which is dominated by the shuffle rather than by
// message size.
func benchTokens(w io.Writer, src *source) {
	h, at := stepnhash.New(), time.UnixMilli(1657992108586)
	email, password := src.email(), src.word(8, 8)
	r := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := b.N; i > 0; i-- {
			h.HashAt(email, password, at)
		}
	})
	Fprintf(w, "%s%s%s\n", und, "github.com/p7r0x7/stepnhash", zero)
	Fprint(w, "Token "+fmtFloats(float64(r.NsPerOp()), float64(r.AllocedBytesPerOp()))+"   ns/op, B/op"+n+n)
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func benchmarks(w io.Writer, src *source) {
	Fprintf(w, "           64B      512K       64M\n")
	for _, a := range algs {
		Fprintf(w, "%s%s%s\n", und, a.name, zero)
		benchAlg(w, src, a.fn)
	}
	benchTokens(w, src)
}

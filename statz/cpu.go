package main

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// features lists the instruction set extensions that sha256-simd and blake3 can take advantage of.
func features() string {
	var have []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range [...]struct {
			name string
			ok   bool
		}{
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"popcnt", cpu.X86.HasPOPCNT},
		} {
			if f.ok {
				have = append(have, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasSHA2 {
			have = append(have, "sha2")
		}
		if cpu.ARM64.HasASIMD {
			have = append(have, "asimd")
		}
	}
	if len(have) == 0 {
		return "none"
	}
	return strings.Join(have, " ")
}

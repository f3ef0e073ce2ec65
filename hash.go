package stepnhash

import (
	"encoding/hex"
	"strconv"
	"time"

	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/stepnhash/bitpack"
	"github.com/p7r0x7/stepnhash/hashcode"
	"github.com/p7r0x7/stepnhash/javarand"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const hexSize = sha256.Size * 2

var epoch = time.Unix(0, 0)

func seed(email []byte) uint32 { return hashcode.Sum(email) }

// EncodeWithSeed shuffles data in place with a generator seeded by seed, then bit-packs it. Callers
// that need data afterwards must pass a copy.
func EncodeWithSeed(data []byte, seed uint64) string {
	javarand.New(seed).ShuffleBytes(data)
	return bitpack.Encode(data)
}

// buffer lays out the bytes that get shuffled: the lowercase hex SHA-256 of password+Salt, the
// separator, then ms in decimal.
func buffer(password []byte, ms int64) []byte {
	d := sha256.New()
	d.Write(password) /* hash.Hash writes never fail. */
	d.Write([]byte(Salt))
	sum := d.Sum(make([]byte, 0, sha256.Size))

	/* 20 digits hold any int64. */
	buf := make([]byte, hexSize, hexSize+1+20)
	hex.Encode(buf, sum)
	buf = append(buf, Separator)
	return strconv.AppendInt(buf, ms, 10)
}

// millis converts t to Unix milliseconds. It panics for instants before the Unix epoch.
func millis(t time.Time) int64 {
	if t.Before(epoch) {
		panic("stepnhash: system clock is before the Unix epoch")
	}
	return t.UnixMilli()
}

// Package stepnhash derives the obfuscated login token that STEPN-compatible services expect in
// place of a password. The token is a pure function of the account email, the password and the
// current time:
//
//	seed   = hashcode.Sum(email)
//	buffer = hex(SHA-256(password + Salt)) + "_" + decimal(Unix milliseconds)
//	javarand.New(seed).ShuffleBytes(buffer)
//	token  = bitpack.Encode(buffer)
//
// None of this is cryptographically meaningful. Every stage must match the service's legacy
// client bit for bit, quirks included.
package stepnhash

import (
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	Salt      = "helloSTEPN"
	Separator = '_'
)

// Hasher computes tokens against a configurable clock. A Hasher is immutable after New and safe for
// concurrent use; each call builds its own buffer and generator.
type Hasher struct {
	now func() time.Time
}

type Option func(*Hasher)

// WithClock replaces time.Now as the source of token timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Hasher) {
		if now != nil {
			h.now = now
		}
	}
}

func New(opts ...Option) *Hasher {
	h := &Hasher{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var std = New()

// HashPassword returns the token for email and password stamped with the current time. Empty
// arguments are valid. It panics if the system clock reads earlier than the Unix epoch.
func HashPassword(email, password string) string {
	return std.Hash([]byte(email), []byte(password))
}

// Hash reads the Hasher's clock once and returns HashAt for that instant.
func (h *Hasher) Hash(email, password []byte) string {
	return h.HashAt(email, password, h.now())
}

// HashAt returns the token for email and password stamped with t. Identical arguments always
// produce identical tokens. It panics if t is earlier than the Unix epoch.
func (h *Hasher) HashAt(email, password []byte, t time.Time) string {
	return EncodeWithSeed(buffer(password, millis(t)), uint64(seed(email)))
}

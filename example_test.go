package stepnhash_test

import (
	"fmt"
	"time"

	"github.com/p7r0x7/stepnhash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func ExampleHasher_HashAt() {
	h := stepnhash.New()
	tok := h.HashAt([]byte("fghfgh@ggg.ggf"), []byte("123456"), time.UnixMilli(1657992108586))
	fmt.Println(tok)
	// Output: XUvPsPAFbQWQ3rvPs87QVE7lTo7lWyAh3oAPWqAhNfAFuP5PBPWPWSVh8Xvh3P7QB8bPbD7lbV7QNr7FBfbFNIAQxRdQVXbQTPxhBhbh
}

func ExampleWithClock() {
	frozen := func() time.Time { return time.UnixMilli(1657992108586) }
	h := stepnhash.New(stepnhash.WithClock(frozen))
	fmt.Println(h.Hash([]byte("fghfgh@ggg.ggf"), []byte("123456")) ==
		h.Hash([]byte("fghfgh@ggg.ggf"), []byte("123456")))
	// Output: true
}

func ExampleEncodeWithSeed() {
	buf := []byte("dfb488dff049a35ae6bd81f32888de972edb0a98b47fd68b321ab79bf32c5ee0_1657992108586")
	fmt.Println(stepnhash.EncodeWithSeed(buf, 1997399150))
	// Output: XE5FsPWP8FdP3HvQVVvP2E7lxhdFx87F3r7lsIWhuHbPuH5PTIdlNLmQ2y5lWQAlB8bF2F5P8qbPNPAlurAhVm5QxoWFurbQVUvPBH7F
}

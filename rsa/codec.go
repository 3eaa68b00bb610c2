package rsa

import (
	"math/big"
)

// Fixed-width big-endian integer codec. Every byte string crossing the
// package boundary (key material fields, raw blocks, padded blocks) is an
// unsigned big-endian integer, zero-padded on the left to a fixed width.

// Decode an unsigned big-endian byte string into an integer. Leading zero
// bytes are ignored; an empty slice decodes to zero.
func int_decode_be(src []byte) *big.Int {
	return new(big.Int).SetBytes(src)
}

// Encode a non-negative integer into exactly size bytes, big-endian,
// zero-padded on the left. False is returned if the value is negative or
// does not fit in size bytes, in which case no output is produced; every
// caller in this package relies on that contract to keep blocks exactly
// one modulus-width wide.
func int_encode_be(x *big.Int, size int) ([]byte, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	b := x.Bytes()
	if len(b) > size {
		return nil, false
	}
	dst := make([]byte, size)
	copy(dst[size-len(b):], b)
	return dst, true
}

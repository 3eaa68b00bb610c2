package rsa

import (
	"io"
	"math/big"
)

var bigOne = big.NewInt(1)
var bigTwo = big.NewInt(2)

// A Mask selects whether the blinding countermeasure is applied on the
// private-key path, and from which random source the blinding factor is
// drawn. The zero value is MASK_DEFAULT: blinding must be opted out of,
// never silently skipped. Only decryption (and signing, which runs
// through the same primitive) consults the mask; encryption and
// verification operate on public data and never blind.
type Mask struct {
	noBlind bool
	rng     io.Reader
}

// Decrypt without blinding. Faster, but the CRT exponentiation timing
// then correlates with the secret operands.
var MASK_NONE = Mask{noBlind: true}

// Decrypt with blinding, drawing the blinding factor from the OS RNG.
var MASK_DEFAULT = Mask{}

// MaskWith selects blinding with an explicit random source for the
// blinding factor. The source MUST be cryptographically secure.
func MaskWith(rng io.Reader) Mask {
	return Mask{rng: rng}
}

// True if gcd(a, b) = 1. Both arguments must be positive.
func coprime(a, b *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, b).Cmp(bigOne) == 0
}

// Fill buf with random non-zero bytes, redrawing every zero byte until
// the whole region is non-zero. Terminates with probability 1 under a
// sound random source.
func fill_nonzero(rng io.Reader, buf []byte) error {
	if _, err := io.ReadFull(rng, buf); err != nil {
		return err
	}
	for i := range buf {
		for buf[i] == 0 {
			if _, err := io.ReadFull(rng, buf[i:i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

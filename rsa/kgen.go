package rsa

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// The conventional public exponent, F4 = 2^16+1.
const DefaultExponent = 65537

// Generate a new private key with a modulus of roughly the given bit
// size.
//
//   - rng is the random source to use (nil to use the OS RNG).
//   - exponent is the public exponent, normally [DefaultExponent].
//   - bits is the requested modulus size.
//
// Two independent primes of bits/2 bits each are sampled until the pair
// satisfies p != q, gcd(e, p-1) = 1 and gcd(e, q-1) = 1; a failing pair
// is discarded entirely and two fresh primes are drawn. Retries are
// unbounded but terminate with probability 1 under a sound source.
//
// This is a textbook generator and is NOT production grade: the modulus
// may fall one bit short of the request, and no strength validation is
// performed on the resulting key. The Insecure suffix is deliberate;
// see the package documentation.
func GenerateKeyInsecure(rng io.Reader, exponent int, bits int) (*PrivateKey, error) {
	if bits < 16 {
		return nil, errors.New("key size too small")
	}
	if exponent < 3 || exponent&1 == 0 {
		return nil, errors.New("invalid public exponent")
	}
	if rng == nil {
		rng = rand.Reader
	}
	e := big.NewInt(int64(exponent))
	for {
		p, err := rand.Prime(rng, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := rand.Prime(rng, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		if !coprime(e, new(big.Int).Sub(p, bigOne)) {
			continue
		}
		if !coprime(e, new(big.Int).Sub(q, bigOne)) {
			continue
		}
		return NewPrivateKeyFromPrimes(e, p, q)
	}
}

package rsa

import (
	"errors"
	"math/big"
)

// A PublicKey holds the public half of an RSA key pair: the modulus n
// and the public exponent e. Valid keys satisfy n > 0 and 1 < e < n.
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

// A PrivateKey holds a full RSA key pair in CRT form. The decryption
// operations assume the documented congruences hold; keys built through
// the constructors of this package are checked on construction.
type PrivateKey struct {
	E    *big.Int // public exponent
	D    *big.Int // private exponent, e^-1 mod (p-1)(q-1)
	N    *big.Int // modulus, p*q
	P    *big.Int // first prime factor
	Q    *big.Int // second prime factor
	Dp   *big.Int // d mod (p-1)
	Dq   *big.Int // d mod (q-1)
	Qinv *big.Int // q^-1 mod p
}

// Construct a public key from its raw parameters, each an unsigned
// big-endian byte string. An error is reported if the modulus is not
// positive or the exponent is outside (1, n).
func NewPublicKey(e, n []byte) (*PublicKey, error) {
	pub := &PublicKey{E: int_decode_be(e), N: int_decode_be(n)}
	if pub.N.Sign() <= 0 {
		return nil, errors.New("invalid modulus")
	}
	if pub.E.Cmp(bigOne) <= 0 || pub.E.Cmp(pub.N) >= 0 {
		return nil, errors.New("invalid public exponent")
	}
	return pub, nil
}

// Construct a private key from its raw parameters, each an unsigned
// big-endian byte string. The CRT congruences are verified; an error is
// reported for any inconsistent parameter set.
func NewPrivateKey(e, d, n, p, q, dp, dq, qinv []byte) (*PrivateKey, error) {
	sk := &PrivateKey{
		E:    int_decode_be(e),
		D:    int_decode_be(d),
		N:    int_decode_be(n),
		P:    int_decode_be(p),
		Q:    int_decode_be(q),
		Dp:   int_decode_be(dp),
		Dq:   int_decode_be(dq),
		Qinv: int_decode_be(qinv),
	}
	if err := sk.Validate(); err != nil {
		return nil, err
	}
	return sk, nil
}

// Construct a private key from a public exponent and two distinct
// primes, deriving n, d and the CRT parameters. An error is reported if
// the primes are equal, or if e has no inverse modulo (p-1)(q-1) (which
// requires gcd(e, p-1) = gcd(e, q-1) = 1).
func NewPrivateKeyFromPrimes(e, p, q *big.Int) (*PrivateKey, error) {
	if p.Cmp(bigOne) <= 0 || q.Cmp(bigOne) <= 0 {
		return nil, errors.New("invalid prime factor")
	}
	if p.Cmp(q) == 0 {
		return nil, errors.New("duplicate prime factor")
	}
	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pm1, qm1)
	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, errors.New("public exponent not invertible modulo phi(n)")
	}
	qinv := new(big.Int).ModInverse(q, p)
	if qinv == nil {
		return nil, errors.New("prime factors are not coprime")
	}
	return &PrivateKey{
		E:    new(big.Int).Set(e),
		D:    d,
		N:    new(big.Int).Mul(p, q),
		P:    new(big.Int).Set(p),
		Q:    new(big.Int).Set(q),
		Dp:   new(big.Int).Mod(d, pm1),
		Dq:   new(big.Int).Mod(d, qm1),
		Qinv: qinv,
	}, nil
}

// Public returns the public key matching sk. The projection is a fresh
// value sharing no state with the private key.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{
		E: new(big.Int).Set(sk.E),
		N: new(big.Int).Set(sk.N),
	}
}

// Validate checks the algebraic consistency of the key:
//
//   - n = p*q with p != q
//   - d*e = 1 mod (p-1)(q-1)
//   - dp = d mod (p-1), dq = d mod (q-1)
//   - qInv*q = 1 mod p
//
// Primality of p and q is not re-proved; a key passing these checks but
// built from composite factors will still fail to round-trip.
func (sk *PrivateKey) Validate() error {
	if sk.N.Sign() <= 0 {
		return errors.New("invalid modulus")
	}
	if sk.E.Cmp(bigOne) <= 0 || sk.E.Cmp(sk.N) >= 0 {
		return errors.New("invalid public exponent")
	}
	// A factor <= 1 would make phi zero below and divide by zero.
	if sk.P.Cmp(bigOne) <= 0 || sk.Q.Cmp(bigOne) <= 0 {
		return errors.New("invalid prime factor")
	}
	if sk.P.Cmp(sk.Q) == 0 {
		return errors.New("duplicate prime factor")
	}
	if new(big.Int).Mul(sk.P, sk.Q).Cmp(sk.N) != 0 {
		return errors.New("modulus does not match prime factors")
	}
	pm1 := new(big.Int).Sub(sk.P, bigOne)
	qm1 := new(big.Int).Sub(sk.Q, bigOne)
	phi := new(big.Int).Mul(pm1, qm1)
	de := new(big.Int).Mul(sk.D, sk.E)
	if de.Mod(de, phi).Cmp(bigOne) != 0 {
		return errors.New("private exponent does not invert public exponent")
	}
	if new(big.Int).Mod(sk.D, pm1).Cmp(sk.Dp) != 0 {
		return errors.New("invalid CRT exponent dp")
	}
	if new(big.Int).Mod(sk.D, qm1).Cmp(sk.Dq) != 0 {
		return errors.New("invalid CRT exponent dq")
	}
	qq := new(big.Int).Mul(sk.Qinv, sk.Q)
	if qq.Mod(qq, sk.P).Cmp(bigOne) != 0 {
		return errors.New("invalid CRT coefficient")
	}
	return nil
}

// BitLen returns the modulus size in bits.
func (pub *PublicKey) BitLen() int {
	return pub.N.BitLen()
}

// Size returns the modulus size in bytes. Raw blocks, signatures and
// ciphertexts produced by this package are exactly Size bytes long.
func (pub *PublicKey) Size() int {
	return (pub.N.BitLen() + 7) / 8
}

// BitLen returns the modulus size in bits.
func (sk *PrivateKey) BitLen() int {
	return sk.N.BitLen()
}

// Size returns the modulus size in bytes.
func (sk *PrivateKey) Size() int {
	return (sk.N.BitLen() + 7) / 8
}

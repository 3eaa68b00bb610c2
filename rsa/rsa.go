package rsa

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	// ErrMessageOutOfRange is reported when a message or ciphertext
	// representative is outside [1, n). This is a caller-contract
	// violation, not a recoverable condition.
	ErrMessageOutOfRange = errors.New("rsa: message representative out of range")

	// ErrMessageTooLong is reported when a message does not leave room
	// for the PKCS#1 v1.5 padding overhead.
	ErrMessageTooLong = errors.New("rsa: message too long for key size")

	// ErrDecryption is reported for any failure while decrypting a
	// PKCS#1 v1.5 ciphertext. It is deliberately generic: distinguishing
	// failure causes on the secret-key path is the basis of
	// padding-oracle attacks.
	ErrDecryption = errors.New("rsa: decryption error")

	// ErrVerification is reported when a signature does not verify.
	ErrVerification = errors.New("rsa: verification error")
)

// Raw forward operation: m^e mod n. No validation beyond the numeric
// domain.
func encrypt_raw(pub *PublicKey, m *big.Int) *big.Int {
	return new(big.Int).Exp(m, pub.E, pub.N)
}

// Raw inverse operation through the CRT parameters:
//
//	m1 = c^dp mod p
//	m2 = c^dq mod q
//	h  = qInv*(m1-m2) mod p
//	m  = m2 + h*q
//
// Equivalent to c^d mod n but roughly four times faster. The m1-m2
// difference may be negative; p is added once before the reduction so
// the recombination works on a non-negative value. No side-channel
// mitigation is applied here, see decrypt_blinded.
func decrypt_crt(sk *PrivateKey, c *big.Int) *big.Int {
	m1 := new(big.Int).Exp(c, sk.Dp, sk.P)
	m2 := new(big.Int).Exp(c, sk.Dq, sk.Q)
	h := m1.Sub(m1, m2)
	if h.Sign() < 0 {
		h.Add(h, sk.P)
	}
	h.Mul(h, sk.Qinv)
	h.Mod(h, sk.P)
	h.Mul(h, sk.Q)
	return h.Add(h, m2)
}

// Raw inverse operation with blinding. A random unit r of Z/nZ is
// drawn, the ciphertext is blinded as c*r^e mod n so the CRT
// exponentiation runs on an operand uncorrelated with the secret
// values, and the factor r is removed from the result afterwards.
// Candidates for r are rejection-sampled from [2, n) until one is
// invertible mod n; a non-unit would make unblinding impossible.
// Retries are unbounded, failing repeatedly has negligible probability
// for a valid modulus. Only a failing random source reports an error.
func decrypt_blinded(sk *PrivateKey, rng io.Reader, c *big.Int) (*big.Int, error) {
	var r, rinv *big.Int
	for {
		var err error
		r, err = rand.Int(rng, sk.N)
		if err != nil {
			return nil, err
		}
		if r.Cmp(bigTwo) < 0 {
			continue
		}
		rinv = new(big.Int).ModInverse(r, sk.N)
		if rinv != nil {
			break
		}
	}
	blinded := new(big.Int).Exp(r, sk.E, sk.N)
	blinded.Mul(blinded, c)
	blinded.Mod(blinded, sk.N)
	m := decrypt_crt(sk, blinded)
	m.Mul(m, rinv)
	return m.Mod(m, sk.N), nil
}

// Encrypt computes the forward RSA operation on the message
// representative m. An error is reported if m is outside [1, n).
func Encrypt(pub *PublicKey, m *big.Int) (*big.Int, error) {
	if m.Cmp(bigOne) < 0 || m.Cmp(pub.N) >= 0 {
		return nil, ErrMessageOutOfRange
	}
	return encrypt_raw(pub, m), nil
}

// Decrypt computes the inverse RSA operation on the ciphertext
// representative c, applying the blinding countermeasure according to
// mask (use MASK_DEFAULT unless there is a specific reason not to).
// An error is reported if c is outside [1, n), or if the mask's random
// source fails.
func Decrypt(sk *PrivateKey, c *big.Int, mask Mask) (*big.Int, error) {
	if c.Cmp(bigOne) < 0 || c.Cmp(sk.N) >= 0 {
		return nil, ErrMessageOutOfRange
	}
	if mask.noBlind {
		return decrypt_crt(sk, c), nil
	}
	rng := mask.rng
	if rng == nil {
		rng = rand.Reader
	}
	return decrypt_blinded(sk, rng, c)
}

// EncryptBytes applies the forward RSA operation at the byte-string
// level. The input decodes as an unsigned big-endian integer which must
// lie in [1, n); the output is exactly pub.Size() bytes.
func EncryptBytes(pub *PublicKey, msg []byte) ([]byte, error) {
	m, err := Encrypt(pub, int_decode_be(msg))
	if err != nil {
		return nil, err
	}
	out, _ := int_encode_be(m, pub.Size()) // m < n, always fits
	return out, nil
}

// DecryptBytes applies the inverse RSA operation at the byte-string
// level, with blinding selected by mask. The input decodes as an
// unsigned big-endian integer which must lie in [1, n); the output is
// exactly sk.Size() bytes, the fixed width the padding layer relies on.
func DecryptBytes(sk *PrivateKey, ct []byte, mask Mask) ([]byte, error) {
	m, err := Decrypt(sk, int_decode_be(ct), mask)
	if err != nil {
		return nil, err
	}
	out, _ := int_encode_be(m, sk.Size()) // m < n, always fits
	return out, nil
}

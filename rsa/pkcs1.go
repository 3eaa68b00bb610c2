package rsa

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// PKCS#1 v1.5 padding. Both schemes pad the message to exactly one
// modulus-width block and then run the raw primitive over it:
//
//	type 1 (signatures): 0x00 0x01 | 0xFF.. | 0x00 | msg
//	type 2 (encryption): 0x00 0x02 | random non-zero.. | 0x00 | data
//
// Padding and unpadding never panic on malformed input; they signal
// failure through their results and leave propagation to the caller.

// Build a type 1 block of exactly size bytes around msg. False is
// returned if msg does not leave room for the three-byte overhead plus
// at least one filler byte.
func pad_type1(size int, msg []byte) ([]byte, bool) {
	if size-len(msg) <= 3 {
		return nil, false
	}
	block := make([]byte, size)
	block[1] = 0x01
	fill := block[2 : size-len(msg)-1]
	for i := range fill {
		fill[i] = 0xFF
	}
	copy(block[size-len(msg):], msg)
	return block, true
}

// Recover the message from a type 1 block: after the 0x00 0x01 header,
// scan over the 0xFF run; the first non-0xFF byte must be the 0x00
// separator and everything after it is the message. Any other byte in
// the run, or reaching the end of the block without a separator, is a
// padding failure. This path handles only public data recovered through
// the public exponent, so no constant-time discipline is needed here.
func unpad_type1(block []byte) ([]byte, bool) {
	if len(block) < 3 || block[0] != 0x00 || block[1] != 0x01 {
		return nil, false
	}
	i := 2
	for i < len(block) && block[i] == 0xFF {
		i++
	}
	if i == len(block) || block[i] != 0x00 {
		return nil, false
	}
	return block[i+1:], true
}

// Build a type 2 block of exactly size bytes around data, filling the
// gap with random non-zero bytes. ErrMessageTooLong is reported unless
// the conventional minimum of eight filler bytes fits.
func pad_type2(rng io.Reader, size int, data []byte) ([]byte, error) {
	if len(data) > size-11 {
		return nil, ErrMessageTooLong
	}
	block := make([]byte, size)
	block[1] = 0x02
	if err := fill_nonzero(rng, block[2:size-len(data)-1]); err != nil {
		return nil, err
	}
	copy(block[size-len(data):], data)
	return block, nil
}

// Recover the data from a type 2 block of exactly size bytes: verify
// the 0x00 0x02 header, then scan from index 2 for the first 0x00
// separator; everything after it is the data. Failure if the length or
// header is wrong or no separator occurs before the block end. The
// header comparison is constant-time, but the separator scan is not;
// callers on the secret-key path must collapse all failures into one
// generic error.
func unpad_type2(size int, block []byte) ([]byte, bool) {
	if len(block) != size || size < 11 {
		return nil, false
	}
	ok := subtle.ConstantTimeByteEq(block[0], 0x00) &
		subtle.ConstantTimeByteEq(block[1], 0x02)
	sep := -1
	for i := 2; i < len(block); i++ {
		if block[i] == 0x00 {
			sep = i
			break
		}
	}
	if ok != 1 || sep < 0 {
		return nil, false
	}
	return block[sep+1:], true
}

// Sign produces a PKCS#1 v1.5 type 1 signature over msg. Note that msg
// is embedded directly: this package does not hash, callers signing
// long inputs are expected to pass a digest. The signature is exactly
// sk.Size() bytes. Blinding of the private-key operation is selected by
// mask. ErrMessageTooLong is reported if msg does not fit in one block.
func Sign(sk *PrivateKey, msg []byte, mask Mask) ([]byte, error) {
	block, ok := pad_type1(sk.Size(), msg)
	if !ok {
		return nil, ErrMessageTooLong
	}
	return DecryptBytes(sk, block, mask)
}

// Verify checks a PKCS#1 v1.5 type 1 signature and returns the
// recovered message. Any malformed signature, of the wrong length or
// with invalid padding after the public-key operation, is reported as
// ErrVerification.
func Verify(pub *PublicKey, sig []byte) ([]byte, error) {
	if len(sig) != pub.Size() {
		return nil, ErrVerification
	}
	block, err := EncryptBytes(pub, sig)
	if err != nil {
		return nil, ErrVerification
	}
	msg, ok := unpad_type1(block)
	if !ok {
		return nil, ErrVerification
	}
	return msg, nil
}

// EncryptPKCS1v15 encrypts data inside a type 2 block. The random
// filler bytes are drawn from rng (nil to use the OS RNG). The
// ciphertext is exactly pub.Size() bytes. ErrMessageTooLong is reported
// if data does not fit in one block.
func EncryptPKCS1v15(rng io.Reader, pub *PublicKey, data []byte) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	block, err := pad_type2(rng, pub.Size(), data)
	if err != nil {
		return nil, err
	}
	return EncryptBytes(pub, block)
}

// DecryptPKCS1v15 decrypts a type 2 ciphertext and returns the embedded
// data. Blinding of the private-key operation is selected by mask.
// Every failure (wrong ciphertext length, representative out of range,
// invalid padding) is reported as the single generic ErrDecryption so
// that failure causes cannot be distinguished.
func DecryptPKCS1v15(sk *PrivateKey, ct []byte, mask Mask) ([]byte, error) {
	k := sk.Size()
	if len(ct) != k {
		return nil, ErrDecryption
	}
	block, err := DecryptBytes(sk, ct, mask)
	if err != nil {
		return nil, ErrDecryption
	}
	data, ok := unpad_type2(k, block)
	if !ok {
		return nil, ErrDecryption
	}
	return data, nil
}

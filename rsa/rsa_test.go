package rsa

import (
	"crypto/rand"
	"io"
	"math/big"
	"testing"

	sha3 "golang.org/x/crypto/sha3"
)

// Deterministic random source for reproducible tests: a SHAKE256 stream
// seeded with a label, so every test draws its own fixed byte sequence.
func test_rng(label string) io.Reader {
	sh := sha3.NewShake256()
	sh.Write([]byte(label))
	return sh
}

// A fixed 512-bit key, reproducible across runs through the seeded
// prime search.
func test_key_512(t testing.TB) *PrivateKey {
	sk, err := GenerateKeyInsecure(test_rng("keygen-512"), DefaultExponent, 512)
	if err != nil {
		t.Fatal(err)
	}
	return sk
}

// The textbook example pair p=61, q=53, e=17.
func test_key_textbook(t testing.TB) *PrivateKey {
	sk, err := NewPrivateKeyFromPrimes(
		big.NewInt(17), big.NewInt(61), big.NewInt(53))
	if err != nil {
		t.Fatal(err)
	}
	return sk
}

func TestRoundTripInteger(t *testing.T) {
	sk := test_key_512(t)
	pub := sk.Public()

	m := big.NewInt(42)
	c, err := Encrypt(pub, m)
	if err != nil {
		t.Fatal(err)
	}
	for _, mask := range []Mask{
		MASK_NONE,
		MASK_DEFAULT,
		Mask{},
		MaskWith(test_rng("blind")),
	} {
		got, err := Decrypt(sk, c, mask)
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(m) != 0 {
			t.Fatalf("round trip failed: got %v, want %v", got, m)
		}
	}
}

func TestMaskZeroValue(t *testing.T) {
	// An uninitialized Mask must select the blinded default path, so
	// forgetting to choose a mask never skips the countermeasure.
	if (Mask{}) != MASK_DEFAULT {
		t.Fatal("zero Mask must equal MASK_DEFAULT")
	}
	if MASK_NONE == MASK_DEFAULT {
		t.Fatal("MASK_NONE must differ from MASK_DEFAULT")
	}
}

func TestTextbookKnownAnswer(t *testing.T) {
	// With n=3233, e=17: 65^17 mod 3233 = 2790.
	sk := test_key_textbook(t)
	c, err := Encrypt(sk.Public(), big.NewInt(65))
	if err != nil {
		t.Fatal(err)
	}
	if c.Cmp(big.NewInt(2790)) != 0 {
		t.Fatalf("wrong ciphertext: got %v, want 2790", c)
	}
	m, err := Decrypt(sk, c, MASK_NONE)
	if err != nil {
		t.Fatal(err)
	}
	if m.Cmp(big.NewInt(65)) != 0 {
		t.Fatalf("wrong plaintext: got %v, want 65", m)
	}
}

func TestCRTMatchesPlainExp(t *testing.T) {
	sk := test_key_512(t)
	rng := test_rng("crt-samples")
	for i := 0; i < 20; i++ {
		c, err := rand.Int(rng, sk.N)
		if err != nil {
			t.Fatal(err)
		}
		want := new(big.Int).Exp(c, sk.D, sk.N)
		if got := decrypt_crt(sk, c); got.Cmp(want) != 0 {
			t.Fatalf("CRT mismatch for sample %d", i)
		}
	}
}

func TestBlindedMatchesCRT(t *testing.T) {
	sk := test_key_512(t)
	samples := test_rng("blind-samples")
	blinds := test_rng("blind-factors")
	for i := 0; i < 10; i++ {
		c, err := rand.Int(samples, sk.N)
		if err != nil {
			t.Fatal(err)
		}
		want := decrypt_crt(sk, c)
		got, err := decrypt_blinded(sk, blinds, c)
		if err != nil {
			t.Fatal(err)
		}
		if got.Cmp(want) != 0 {
			t.Fatalf("blinded mismatch for sample %d", i)
		}
	}
}

func TestRangeValidation(t *testing.T) {
	sk := test_key_textbook(t)
	pub := sk.Public()

	for _, m := range []*big.Int{
		big.NewInt(0),
		big.NewInt(-5),
		new(big.Int).Set(pub.N),
		new(big.Int).Add(pub.N, bigOne),
	} {
		if _, err := Encrypt(pub, m); err != ErrMessageOutOfRange {
			t.Fatalf("Encrypt(%v): got %v, want ErrMessageOutOfRange", m, err)
		}
		if _, err := Decrypt(sk, m, MASK_NONE); err != ErrMessageOutOfRange {
			t.Fatalf("Decrypt(%v): got %v, want ErrMessageOutOfRange", m, err)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	sk := test_key_512(t)
	pub := sk.Public()
	k := pub.Size()

	msgs := [][]byte{
		{0x01},
		{0x00, 0x00, 0x2A},
		make([]byte, k), // all zero except the tail below
	}
	msgs[2][k-1] = 0x07

	for _, msg := range msgs {
		ct, err := EncryptBytes(pub, msg)
		if err != nil {
			t.Fatal(err)
		}
		if len(ct) != k {
			t.Fatalf("wrong ciphertext size: %d", len(ct))
		}
		pt, err := DecryptBytes(sk, ct, MASK_NONE)
		if err != nil {
			t.Fatal(err)
		}
		if len(pt) != k {
			t.Fatalf("wrong plaintext size: %d", len(pt))
		}
		// Fixed-width output: compare as integers.
		if int_decode_be(pt).Cmp(int_decode_be(msg)) != 0 {
			t.Fatalf("byte round trip failed for %x", msg)
		}
	}
}

func BenchmarkEncrypt512(b *testing.B) {
	sk := test_key_512(b)
	pub := sk.Public()
	m := big.NewInt(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encrypt(pub, m)
	}
}

func BenchmarkDecrypt512(b *testing.B) {
	sk := test_key_512(b)
	c, _ := Encrypt(sk.Public(), big.NewInt(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decrypt(sk, c, MASK_NONE)
	}
}

func BenchmarkDecryptBlinded512(b *testing.B) {
	sk := test_key_512(b)
	c, _ := Encrypt(sk.Public(), big.NewInt(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decrypt(sk, c, MASK_DEFAULT)
	}
}

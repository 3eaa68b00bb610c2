// This package implements the RSA public-key cryptosystem over
// arbitrary-precision integers: key representation in full CRT form,
// the raw modular-exponentiation primitive (plain and CRT-accelerated),
// a blinding countermeasure against timing side channels, textbook key
// generation, and PKCS#1 v1.5 padding for both signing (type 1) and
// encryption (type 2).
//
// WARNING: the built-in key generator is a textbook prime-pair search.
// It does not enforce a minimum modulus size, does not guarantee that
// the modulus reaches exactly the requested bit length, and performs no
// key-strength validation beyond the algebraic requirements for the
// private exponent to exist. It is meant for tests and prototyping
// only, which is why it is reachable solely through the
// [GenerateKeyInsecure] entry point; production deployments must obtain
// key material from a hardened generator.
//
// Keys are immutable value records. A key pair is either constructed
// from raw big-endian byte-string parameters ([NewPublicKey],
// [NewPrivateKey]), derived from two primes and a public exponent
// ([NewPrivateKeyFromPrimes]), or produced by the generator. All
// byte-string inputs and outputs of this package are fixed-width
// unsigned big-endian integers, zero-padded on the left to the modulus
// size in bytes.
//
// Operations that draw randomness (blinded decryption, encryption
// padding, key generation) take an io.Reader random source; nil selects
// the operating system's RNG (through crypto/rand.Reader). Whether the
// private-key path applies blinding is selected with a [Mask] value:
// [MASK_NONE] (no blinding), [MASK_DEFAULT] (blinding with the OS RNG),
// or [MaskWith] (blinding with an explicit source). Encryption and
// signature verification use only public data and never blind.
//
// All operations are synchronous and free of shared mutable state; any
// operation may be invoked concurrently provided the injected random
// source is itself safe for concurrent use.
package rsa

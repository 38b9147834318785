// Package service provides the cryptographic primitives behind the envelope:
// key derivation, the fixed nonce, the secretbox and box constructions, and
// the raw/text ciphertext encoder.
package service

import (
	"github.com/talegari/safer/internal/crypto/domain"
)

// KeyDeriver turns a human passphrase into fixed-length symmetric key bytes.
type KeyDeriver interface {
	// Derive hashes the UTF-8 bytes of passphrase into exactly 32 key bytes.
	// Deterministic: the same passphrase always yields the same key.
	Derive(passphrase string) ([]byte, error)
}

// NonceProvider produces the nonce used for every cipher operation.
type NonceProvider interface {
	// Nonce returns the fixed 24-byte nonce. Pure function, constant value.
	Nonce() [domain.NonceSize]byte
}

// SymmetricCipher is the authenticated secret-key primitive.
type SymmetricCipher interface {
	// Seal encrypts and authenticates plaintext under key and nonce.
	Seal(plaintext, key []byte, nonce [domain.NonceSize]byte) ([]byte, error)

	// Open authenticates and decrypts ciphertext. Returns
	// domain.ErrAuthenticationFailed when the Poly1305 tag does not verify.
	Open(ciphertext, key []byte, nonce [domain.NonceSize]byte) ([]byte, error)
}

// AsymmetricCipher is the authenticated public-key primitive (box
// construction): curve25519 key agreement feeding the same authenticated
// stream cipher as the symmetric case.
type AsymmetricCipher interface {
	// Seal encrypts plaintext with the caller's private key and the peer's
	// public key.
	Seal(plaintext, ownPrivate, peerPublic []byte, nonce [domain.NonceSize]byte) ([]byte, error)

	// Open is the mirror of Seal: data sealed with (A-private, B-public)
	// opens with (B-private, A-public) under the same nonce.
	Open(ciphertext, ownPrivate, peerPublic []byte, nonce [domain.NonceSize]byte) ([]byte, error)
}

// Encoder converts ciphertext between its raw and text representations.
type Encoder interface {
	// Encode applies the encoding mode to b. Raw is a pass-through; Text
	// produces standard base64 ASCII.
	Encode(b []byte, mode domain.EncodingMode) ([]byte, error)

	// Decode is the inverse of Encode. Returns domain.ErrEncoding when Text
	// decoding is requested on data that is not valid base64.
	Decode(b []byte, mode domain.EncodingMode) ([]byte, error)
}

// KeyPairGenerator produces curve25519 key pairs. It is the boundary
// collaborator of the envelope: the envelope only ever consumes the resulting
// raw key bytes.
type KeyPairGenerator interface {
	// Generate derives a key pair deterministically from a 32-byte seed, or
	// from a randomly chosen seed when seed is nil.
	Generate(seed []byte) (domain.KeyPair, error)
}

package usecase

import (
	"context"

	"github.com/talegari/safer/internal/crypto/domain"
)

// UseCase is the single entry point every front-end delegates to: it selects
// the cipher from the key's method, applies the fixed nonce, and converts
// between raw and text representations.
type UseCase interface {
	// Seal encrypts plaintext under key and returns the encoded ciphertext.
	// In Text mode the result holds base64 ASCII; in Raw mode it is the
	// ciphertext bytes with no framing.
	Seal(ctx context.Context, plaintext []byte, key domain.Key, mode domain.EncodingMode) ([]byte, error)

	// Open is the mirror of Seal: decode, pick the cipher, authenticate,
	// decrypt. Failures surface as domain.ErrKeyMaterial, domain.ErrEncoding,
	// or domain.ErrAuthenticationFailed and are never masked or retried.
	Open(ctx context.Context, input []byte, key domain.Key, mode domain.EncodingMode) ([]byte, error)

	// PassphraseKey derives a symmetric Key from a human passphrase.
	// Deterministic: the same passphrase always yields the same key.
	PassphraseKey(passphrase string) (domain.Key, error)

	// GenerateKeyPair produces a curve25519 key pair, deterministically from
	// a 32-byte seed or from a random seed when seed is nil.
	GenerateKeyPair(seed []byte) (domain.KeyPair, error)
}

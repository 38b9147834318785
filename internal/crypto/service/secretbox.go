package service

import (
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/talegari/safer/internal/crypto/domain"
)

// SecretboxCipher implements SymmetricCipher using NaCl secretbox
// (XSalsa20 stream cipher with a Poly1305 MAC).
//
// The sealed output is exactly plaintext length plus domain.Overhead bytes;
// no nonce or framing is prepended, because the nonce is the fixed constant
// recomputed identically on open.
type SecretboxCipher struct{}

// NewSecretboxCipher creates a new SecretboxCipher.
func NewSecretboxCipher() *SecretboxCipher {
	return &SecretboxCipher{}
}

// Seal encrypts and authenticates plaintext under key and nonce.
// Returns domain.ErrKeyMaterial if key is not exactly 32 bytes.
func (c *SecretboxCipher) Seal(
	plaintext, key []byte,
	nonce [domain.NonceSize]byte,
) ([]byte, error) {
	boxKey, err := toKeyArray(key)
	if err != nil {
		return nil, err
	}

	return secretbox.Seal(nil, plaintext, &nonce, boxKey), nil
}

// Open authenticates and decrypts ciphertext under key and nonce.
// Returns domain.ErrAuthenticationFailed when the MAC does not verify:
// wrong key, or tampered, corrupted, or truncated ciphertext.
func (c *SecretboxCipher) Open(
	ciphertext, key []byte,
	nonce [domain.NonceSize]byte,
) ([]byte, error) {
	boxKey, err := toKeyArray(key)
	if err != nil {
		return nil, err
	}

	plaintext, ok := secretbox.Open(nil, ciphertext, &nonce, boxKey)
	if !ok {
		return nil, domain.ErrAuthenticationFailed
	}

	return plaintext, nil
}

// toKeyArray copies a 32-byte slice into the fixed-size array form the NaCl
// primitives take.
func toKeyArray(key []byte) (*[domain.KeySize]byte, error) {
	if len(key) != domain.KeySize {
		return nil, domain.ErrKeyMaterial
	}

	var out [domain.KeySize]byte
	copy(out[:], key)
	return &out, nil
}

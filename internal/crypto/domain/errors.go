package domain

import (
	"github.com/talegari/safer/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. Every failure is terminal:
// the envelope never retries, substitutes a fallback key, or returns partial
// output.
var (
	// ErrKeyMaterial indicates malformed, absent, or wrong-shaped key
	// material: a raw key or key-pair half that is not exactly 32 bytes, or
	// a passphrase that cannot be converted to key bytes.
	ErrKeyMaterial = errors.Wrap(errors.ErrInvalidInput, "invalid key material")

	// ErrEncoding indicates input that is not valid base64 when text
	// decoding is requested.
	ErrEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid encoding")

	// ErrAuthenticationFailed indicates the Poly1305 authentication check
	// failed on open. This covers a wrong key, a key pair that does not
	// correspond to the sealing pair, and tampered, corrupted, or truncated
	// ciphertext; the causes are deliberately indistinguishable.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "authentication failed")
)

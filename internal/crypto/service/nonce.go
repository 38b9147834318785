package service

import (
	"golang.org/x/crypto/blake2b"

	"github.com/talegari/safer/internal/crypto/domain"
)

// nonceLiteral is the hard-coded input the fixed nonce is derived from.
const nonceLiteral = "nounce"

// FixedNonceProvider implements NonceProvider with a constant nonce: the
// 24-byte BLAKE2b hash of a hard-coded literal.
//
// This means every message sealed under a given key reuses the same
// (key, nonce) pair. Keystream reuse breaks confidentiality when multiple
// distinct plaintexts are sealed under one key; callers needing that
// guarantee must use a fresh key per message.
type FixedNonceProvider struct{}

// NewNonceProvider creates a new FixedNonceProvider.
func NewNonceProvider() *FixedNonceProvider {
	return &FixedNonceProvider{}
}

// Nonce returns the fixed 24-byte nonce. Always the same value.
func (p *FixedNonceProvider) Nonce() [domain.NonceSize]byte {
	var nonce [domain.NonceSize]byte

	// blake2b.New only fails for invalid sizes; 24 is within range.
	h, err := blake2b.New(domain.NonceSize, nil)
	if err != nil {
		panic(err)
	}
	h.Write([]byte(nonceLiteral))
	copy(nonce[:], h.Sum(nil))

	return nonce
}

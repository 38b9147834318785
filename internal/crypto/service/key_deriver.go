package service

import (
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/talegari/safer/internal/crypto/domain"
)

// Blake2bKeyDeriver implements KeyDeriver using BLAKE2b-256.
//
// The passphrase bytes are hashed once into exactly 32 key bytes. There is no
// salt and no work factor: derivation must be deterministic so that the same
// passphrase always opens data it sealed.
type Blake2bKeyDeriver struct{}

// NewKeyDeriver creates a new Blake2bKeyDeriver.
func NewKeyDeriver() *Blake2bKeyDeriver {
	return &Blake2bKeyDeriver{}
}

// Derive hashes the UTF-8 bytes of passphrase into a 32-byte symmetric key.
// Returns domain.ErrKeyMaterial for a passphrase containing an embedded NUL,
// which cannot be represented as C-style key bytes.
func (d *Blake2bKeyDeriver) Derive(passphrase string) ([]byte, error) {
	if strings.ContainsRune(passphrase, 0) {
		return nil, domain.ErrKeyMaterial
	}

	sum := blake2b.Sum256([]byte(passphrase))
	return sum[:], nil
}

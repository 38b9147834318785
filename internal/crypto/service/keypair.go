package service

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/talegari/safer/internal/crypto/domain"
)

// Curve25519KeyPairGenerator implements KeyPairGenerator.
//
// The private key is the seed itself; the public key is the curve25519
// scalar-base multiplication of the private key, the same derivation NaCl box
// applies internally. The pair is therefore fully deterministic in the seed.
type Curve25519KeyPairGenerator struct{}

// NewKeyPairGenerator creates a new Curve25519KeyPairGenerator.
func NewKeyPairGenerator() *Curve25519KeyPairGenerator {
	return &Curve25519KeyPairGenerator{}
}

// Generate produces a key pair from the given 32-byte seed, or from a fresh
// random seed when seed is nil. Returns domain.ErrKeyMaterial for a seed of
// any other length.
func (g *Curve25519KeyPairGenerator) Generate(seed []byte) (domain.KeyPair, error) {
	if seed == nil {
		seed = make([]byte, domain.KeySize)
		if _, err := rand.Read(seed); err != nil {
			return domain.KeyPair{}, fmt.Errorf("failed to generate seed: %w", err)
		}
	}
	if len(seed) != domain.KeySize {
		return domain.KeyPair{}, domain.ErrKeyMaterial
	}

	private := make([]byte, domain.KeySize)
	copy(private, seed)

	public, err := curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("failed to derive public key: %w", err)
	}

	return domain.KeyPair{
		PrivateKey: private,
		PublicKey:  public,
		Seed:       seed,
	}, nil
}

package service

import (
	"golang.org/x/crypto/nacl/box"

	"github.com/talegari/safer/internal/crypto/domain"
)

// BoxCipher implements AsymmetricCipher using NaCl box: curve25519 key
// agreement between the sender's private key and the receiver's public key,
// feeding the same XSalsa20-Poly1305 construction as the symmetric case.
type BoxCipher struct{}

// NewBoxCipher creates a new BoxCipher.
func NewBoxCipher() *BoxCipher {
	return &BoxCipher{}
}

// Seal encrypts plaintext with (ownPrivate, peerPublic). The result opens
// with the mirrored pair (peerPrivate, ownPublic) under the same nonce.
// Returns domain.ErrKeyMaterial if either key half is not exactly 32 bytes.
func (c *BoxCipher) Seal(
	plaintext, ownPrivate, peerPublic []byte,
	nonce [domain.NonceSize]byte,
) ([]byte, error) {
	private, err := toKeyArray(ownPrivate)
	if err != nil {
		return nil, err
	}
	public, err := toKeyArray(peerPublic)
	if err != nil {
		return nil, err
	}

	return box.Seal(nil, plaintext, &nonce, public, private), nil
}

// Open authenticates and decrypts ciphertext with (ownPrivate, peerPublic).
// Returns domain.ErrAuthenticationFailed when the MAC does not verify, which
// includes the case where the two key pairs do not correspond to each other.
func (c *BoxCipher) Open(
	ciphertext, ownPrivate, peerPublic []byte,
	nonce [domain.NonceSize]byte,
) ([]byte, error) {
	private, err := toKeyArray(ownPrivate)
	if err != nil {
		return nil, err
	}
	public, err := toKeyArray(peerPublic)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.Open(nil, ciphertext, &nonce, public, private)
	if !ok {
		return nil, domain.ErrAuthenticationFailed
	}

	return plaintext, nil
}

// Package domain defines the key material, encoding, and error types shared by
// the cipher services and the envelope use case.
package domain

// KeySize is the length in bytes of every key this package handles: derived
// symmetric keys, raw symmetric keys, and both halves of a curve25519 pair.
const KeySize = 32

// NonceSize is the length in bytes of the XSalsa20-Poly1305 nonce.
const NonceSize = 24

// Overhead is the fixed number of bytes a sealed message grows by: the
// Poly1305 authentication tag.
const Overhead = 16

// Method selects the cipher construction used for one seal or open call.
// There is no hybrid mode: a call is either symmetric or asymmetric.
type Method int

const (
	// Symmetric uses a single 32-byte secret key (secretbox construction).
	Symmetric Method = iota
	// Asymmetric uses the caller's private key and the peer's public key
	// (box construction, curve25519 key agreement).
	Asymmetric
)

// String returns the method name for logs and metrics labels.
func (m Method) String() string {
	switch m {
	case Symmetric:
		return "symmetric"
	case Asymmetric:
		return "asymmetric"
	default:
		return "unknown"
	}
}

// Key holds validated key material for exactly one seal or open call.
//
// A Key is built through one of the constructors below, which validate shape
// at the boundary; cipher code never re-checks lengths. Keys are never
// persisted and hold no state beyond the raw bytes.
type Key struct {
	Method Method

	// Secret is the 32-byte symmetric key. Set only when Method is Symmetric.
	Secret []byte

	// Private is the caller's own 32-byte curve25519 private key and Public
	// is the peer's 32-byte public key. Set only when Method is Asymmetric.
	Private []byte
	Public  []byte
}

// NewSymmetricKey builds a symmetric Key from raw key bytes, used verbatim.
// No entropy validation is performed beyond the length the cipher requires.
func NewSymmetricKey(raw []byte) (Key, error) {
	if len(raw) != KeySize {
		return Key{}, ErrKeyMaterial
	}
	return Key{Method: Symmetric, Secret: raw}, nil
}

// NewBoxKey builds an asymmetric Key from the caller's private key and the
// peer's public key. Both must be raw 32-byte sequences.
func NewBoxKey(ownPrivate, peerPublic []byte) (Key, error) {
	if len(ownPrivate) != KeySize || len(peerPublic) != KeySize {
		return Key{}, ErrKeyMaterial
	}
	return Key{Method: Asymmetric, Private: ownPrivate, Public: peerPublic}, nil
}

// KeyPair is a curve25519 key pair produced by the key pair generator.
//
// PublicKey is a deterministic function of PrivateKey; consumers use the pair
// as given and never re-derive one half from the other.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
	Seed       []byte
}

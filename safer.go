// Package safer encrypts and decrypts strings, objects, and files using the
// NaCl secretbox and box constructions. Symmetric keys come from a passphrase
// or raw 32-byte key material; asymmetric encryption uses curve25519 key
// pairs. Objects are serialized with a pluggable codec (gob by default) and
// can be persisted encrypted to any gocloud.dev blob bucket.
package safer

import (
	"context"
	"fmt"
	"os"

	"gocloud.dev/blob"

	"github.com/talegari/safer/internal/codec"
	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	cryptoService "github.com/talegari/safer/internal/crypto/service"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
	storeUseCase "github.com/talegari/safer/internal/store/usecase"
)

// Key is the key material for one encryption or decryption call: a symmetric
// 32-byte secret, or a private/public curve25519 pair.
type Key = cryptoDomain.Key

// KeyPair holds a curve25519 private/public key pair and the seed it was
// derived from.
type KeyPair = cryptoDomain.KeyPair

// Codec serializes values to bytes and back for the object front-ends.
type Codec = codec.Codec

// Sentinel errors surfaced by the package. All three wrap the common invalid
// input sentinel, so callers may match broadly or precisely.
var (
	ErrKeyMaterial          = cryptoDomain.ErrKeyMaterial
	ErrEncoding             = cryptoDomain.ErrEncoding
	ErrAuthenticationFailed = cryptoDomain.ErrAuthenticationFailed
)

// Safer is the library entry point. The zero value is not usable; construct
// with New or NewWithCodec. Safe for concurrent use.
type Safer struct {
	envelope envelopeUseCase.UseCase
	codec    codec.Codec
}

// New returns a Safer using the gob codec for object serialization.
func New() *Safer {
	return NewWithCodec(codec.NewGobCodec())
}

// NewWithCodec returns a Safer using c for object serialization.
func NewWithCodec(c codec.Codec) *Safer {
	return &Safer{
		envelope: envelopeUseCase.NewEnvelopeUseCase(
			cryptoService.NewKeyDeriver(),
			cryptoService.NewNonceProvider(),
			cryptoService.NewSecretboxCipher(),
			cryptoService.NewBoxCipher(),
			cryptoService.NewEncoder(),
			cryptoService.NewKeyPairGenerator(),
		),
		codec: c,
	}
}

// PassphraseKey derives a symmetric key from a passphrase. Derivation is
// deterministic: the same passphrase always yields the same key.
func (s *Safer) PassphraseKey(passphrase string) (Key, error) {
	return s.envelope.PassphraseKey(passphrase)
}

// SymmetricKey builds a key from raw 32-byte material, skipping derivation.
func SymmetricKey(raw []byte) (Key, error) {
	return cryptoDomain.NewSymmetricKey(raw)
}

// BoxKey builds an asymmetric key from the caller's private key and the
// peer's public key, both 32 bytes.
func BoxKey(ownPrivate, peerPublic []byte) (Key, error) {
	return cryptoDomain.NewBoxKey(ownPrivate, peerPublic)
}

// GenerateKeyPair generates a curve25519 key pair. With a 32-byte seed the
// pair is deterministic; with a nil seed a random one is drawn.
func (s *Safer) GenerateKeyPair(seed []byte) (KeyPair, error) {
	return s.envelope.GenerateKeyPair(seed)
}

// EncryptString seals plaintext under key and returns the base64 result.
func (s *Safer) EncryptString(ctx context.Context, plaintext string, key Key) (string, error) {
	sealed, err := s.envelope.Seal(ctx, []byte(plaintext), key, cryptoDomain.Text)
	if err != nil {
		return "", err
	}
	return string(sealed), nil
}

// DecryptString opens a base64 sealed string and returns the plaintext.
func (s *Safer) DecryptString(ctx context.Context, sealed string, key Key) (string, error) {
	plaintext, err := s.envelope.Open(ctx, []byte(sealed), key, cryptoDomain.Text)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptObject serializes value, seals it under key, and returns the base64
// result.
func (s *Safer) EncryptObject(ctx context.Context, value any, key Key) (string, error) {
	data, err := s.codec.Marshal(value)
	if err != nil {
		return "", err
	}
	defer cryptoDomain.Zero(data)

	sealed, err := s.envelope.Seal(ctx, data, key, cryptoDomain.Text)
	if err != nil {
		return "", err
	}
	return string(sealed), nil
}

// DecryptObject opens a base64 sealed object and deserializes it into the
// value pointed to by target.
func (s *Safer) DecryptObject(ctx context.Context, sealed string, target any, key Key) error {
	data, err := s.envelope.Open(ctx, []byte(sealed), key, cryptoDomain.Text)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(data)

	return s.codec.Unmarshal(data, target)
}

// EncryptFile seals the contents of inPath under key and writes the raw
// sealed bytes to outPath.
func (s *Safer) EncryptFile(ctx context.Context, inPath, outPath string, key Key) error {
	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	defer cryptoDomain.Zero(plaintext)

	sealed, err := s.envelope.Seal(ctx, plaintext, key, cryptoDomain.Raw)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// DecryptFile opens the raw sealed bytes of inPath with key and writes the
// plaintext to outPath.
func (s *Safer) DecryptFile(ctx context.Context, inPath, outPath string, key Key) error {
	sealed, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	plaintext, err := s.envelope.Open(ctx, sealed, key, cryptoDomain.Raw)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(plaintext)

	if err := os.WriteFile(outPath, plaintext, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// SaveObject serializes value, seals it under key, and writes it to bucket
// under name. An existing object with the same name is replaced.
func (s *Safer) SaveObject(
	ctx context.Context, bucket *blob.Bucket, name string, value any, key Key,
) error {
	store := storeUseCase.NewStoreUseCase(s.codec, s.envelope, bucket)
	return store.Save(ctx, name, value, key)
}

// RetrieveObject reads the object stored in bucket under name, opens it with
// key, and deserializes it into the value pointed to by target.
func (s *Safer) RetrieveObject(
	ctx context.Context, bucket *blob.Bucket, name string, target any, key Key,
) error {
	store := storeUseCase.NewStoreUseCase(s.codec, s.envelope, bucket)
	return store.Retrieve(ctx, name, target, key)
}

// Package usecase implements the envelope orchestrator: the one place where
// key validation, nonce policy, cipher selection, and ciphertext encoding
// come together. The four front-ends (string, object, file, store) are thin
// adapters around this package.
//
// The envelope is stateless and performs no I/O: every operation is a pure
// function of its explicit inputs, safe for concurrent use without
// coordination.
package usecase

import (
	"context"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	cryptoService "github.com/talegari/safer/internal/crypto/service"
	apperrors "github.com/talegari/safer/internal/errors"
)

// envelopeUseCase implements UseCase by composing the cipher services.
type envelopeUseCase struct {
	deriver    cryptoService.KeyDeriver
	nonces     cryptoService.NonceProvider
	secretbox  cryptoService.SymmetricCipher
	box        cryptoService.AsymmetricCipher
	encoder    cryptoService.Encoder
	keyPairGen cryptoService.KeyPairGenerator
}

// NewEnvelopeUseCase creates an envelope use case from the cipher services.
func NewEnvelopeUseCase(
	deriver cryptoService.KeyDeriver,
	nonces cryptoService.NonceProvider,
	symmetric cryptoService.SymmetricCipher,
	asymmetric cryptoService.AsymmetricCipher,
	encoder cryptoService.Encoder,
	keyPairGen cryptoService.KeyPairGenerator,
) UseCase {
	return &envelopeUseCase{
		deriver:    deriver,
		nonces:     nonces,
		secretbox:  symmetric,
		box:        asymmetric,
		encoder:    encoder,
		keyPairGen: keyPairGen,
	}
}

// Seal encrypts plaintext under key and applies the encoding mode.
//
// The pipeline is fixed: validate plaintext, select the cipher from the key's
// method, fetch the constant nonce, seal, encode. Every failure aborts the
// call; no fallback key is ever substituted and no partial output is
// returned.
func (e *envelopeUseCase) Seal(
	ctx context.Context,
	plaintext []byte,
	key cryptoDomain.Key,
	mode cryptoDomain.EncodingMode,
) ([]byte, error) {
	if plaintext == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "plaintext is required")
	}

	nonce := e.nonces.Nonce()

	var ciphertext []byte
	var err error

	switch key.Method {
	case cryptoDomain.Symmetric:
		ciphertext, err = e.secretbox.Seal(plaintext, key.Secret, nonce)
	case cryptoDomain.Asymmetric:
		ciphertext, err = e.box.Seal(plaintext, key.Private, key.Public, nonce)
	default:
		err = cryptoDomain.ErrKeyMaterial
	}
	if err != nil {
		return nil, err
	}

	return e.encoder.Encode(ciphertext, mode)
}

// Open decrypts input sealed by Seal with the same key material and mode.
//
// Mirror of the seal pipeline: decode, select the cipher, authenticate,
// decrypt. ErrAuthenticationFailed, ErrKeyMaterial, and ErrEncoding
// propagate to the caller unchanged.
func (e *envelopeUseCase) Open(
	ctx context.Context,
	input []byte,
	key cryptoDomain.Key,
	mode cryptoDomain.EncodingMode,
) ([]byte, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "input is required")
	}

	ciphertext, err := e.encoder.Decode(input, mode)
	if err != nil {
		return nil, err
	}

	nonce := e.nonces.Nonce()

	switch key.Method {
	case cryptoDomain.Symmetric:
		return e.secretbox.Open(ciphertext, key.Secret, nonce)
	case cryptoDomain.Asymmetric:
		return e.box.Open(ciphertext, key.Private, key.Public, nonce)
	default:
		return nil, cryptoDomain.ErrKeyMaterial
	}
}

// PassphraseKey derives a 32-byte symmetric key from passphrase.
func (e *envelopeUseCase) PassphraseKey(passphrase string) (cryptoDomain.Key, error) {
	secret, err := e.deriver.Derive(passphrase)
	if err != nil {
		return cryptoDomain.Key{}, err
	}
	return cryptoDomain.NewSymmetricKey(secret)
}

// GenerateKeyPair delegates to the curve25519 key pair generator.
func (e *envelopeUseCase) GenerateKeyPair(seed []byte) (cryptoDomain.KeyPair, error) {
	return e.keyPairGen.Generate(seed)
}

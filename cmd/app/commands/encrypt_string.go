package commands

import (
	"context"
	"fmt"
	"io"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
)

// RunEncryptString seals input and writes the text-encoded result to w.
// Key material comes from a passphrase or a base64 private/public key pair.
func RunEncryptString(
	ctx context.Context,
	envelope envelopeUseCase.UseCase,
	w io.Writer,
	input, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	sealed, err := envelope.Seal(ctx, []byte(input), key, cryptoDomain.Text)
	if err != nil {
		return fmt.Errorf("failed to encrypt string: %w", err)
	}

	fmt.Fprintln(w, string(sealed))
	return nil
}

// RunDecryptString opens a text-encoded sealed string and writes the
// plaintext to w.
func RunDecryptString(
	ctx context.Context,
	envelope envelopeUseCase.UseCase,
	w io.Writer,
	input, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	plaintext, err := envelope.Open(ctx, []byte(input), key, cryptoDomain.Text)
	if err != nil {
		return fmt.Errorf("failed to decrypt string: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	fmt.Fprintln(w, string(plaintext))
	return nil
}

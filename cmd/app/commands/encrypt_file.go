package commands

import (
	"context"
	"fmt"
	"os"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
)

// encryptedFileMode keeps sealed files private to the owner.
const encryptedFileMode = 0o600

// RunEncryptFile seals the contents of inPath and writes the raw sealed
// bytes to outPath. When outPath is empty, inPath plus ".safer" is used.
func RunEncryptFile(
	ctx context.Context,
	envelope envelopeUseCase.UseCase,
	inPath, outPath, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	if outPath == "" {
		outPath = inPath + ".safer"
	}

	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	plaintext, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	defer cryptoDomain.Zero(plaintext)

	sealed, err := envelope.Seal(ctx, plaintext, key, cryptoDomain.Raw)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, sealed, encryptedFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return nil
}

// RunDecryptFile opens the raw sealed bytes of inPath and writes the
// plaintext to outPath.
func RunDecryptFile(
	ctx context.Context,
	envelope envelopeUseCase.UseCase,
	inPath, outPath, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	if outPath == "" {
		return fmt.Errorf("output path is required")
	}

	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	sealed, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	plaintext, err := envelope.Open(ctx, sealed, key, cryptoDomain.Raw)
	if err != nil {
		return fmt.Errorf("failed to decrypt %s: %w", inPath, err)
	}
	defer cryptoDomain.Zero(plaintext)

	if err := os.WriteFile(outPath, plaintext, encryptedFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return nil
}

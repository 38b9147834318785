// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"os"

	"github.com/talegari/safer/internal/app"
	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// resolveKey builds key material from CLI flags: a passphrase, or a base64
// private/public key pair for the box construction.
func resolveKey(
	envelope envelopeUseCase.UseCase,
	passphrase, privateKeyB64, publicKeyB64 string,
) (cryptoDomain.Key, error) {
	if privateKeyB64 != "" || publicKeyB64 != "" {
		private, err := base64.StdEncoding.DecodeString(privateKeyB64)
		if err != nil {
			return cryptoDomain.Key{}, cryptoDomain.ErrKeyMaterial
		}
		public, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return cryptoDomain.Key{}, cryptoDomain.ErrKeyMaterial
		}
		return cryptoDomain.NewBoxKey(private, public)
	}
	return envelope.PassphraseKey(passphrase)
}

package commands

import (
	"testing"

	cryptoService "github.com/talegari/safer/internal/crypto/service"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
)

// newTestEnvelope wires a real envelope use case for command tests.
func newTestEnvelope(t *testing.T) envelopeUseCase.UseCase {
	t.Helper()

	return envelopeUseCase.NewEnvelopeUseCase(
		cryptoService.NewKeyDeriver(),
		cryptoService.NewNonceProvider(),
		cryptoService.NewSecretboxCipher(),
		cryptoService.NewBoxCipher(),
		cryptoService.NewEncoder(),
		cryptoService.NewKeyPairGenerator(),
	)
}

package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	"github.com/talegari/safer/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Seal records metrics for seal operations.
func (e *envelopeUseCaseWithMetrics) Seal(
	ctx context.Context,
	plaintext []byte,
	key cryptoDomain.Key,
	mode cryptoDomain.EncodingMode,
) ([]byte, error) {
	start := time.Now()
	output, err := e.next.Seal(ctx, plaintext, key, mode)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "envelope", "envelope_seal", status)
	e.metrics.RecordDuration(ctx, "envelope", "envelope_seal", time.Since(start), status)

	return output, err
}

// Open records metrics for open operations.
func (e *envelopeUseCaseWithMetrics) Open(
	ctx context.Context,
	input []byte,
	key cryptoDomain.Key,
	mode cryptoDomain.EncodingMode,
) ([]byte, error) {
	start := time.Now()
	output, err := e.next.Open(ctx, input, key, mode)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "envelope", "envelope_open", status)
	e.metrics.RecordDuration(ctx, "envelope", "envelope_open", time.Since(start), status)

	return output, err
}

// PassphraseKey delegates key derivation without instrumentation; it is a
// pure local computation with no failure modes worth a time series.
func (e *envelopeUseCaseWithMetrics) PassphraseKey(passphrase string) (cryptoDomain.Key, error) {
	return e.next.PassphraseKey(passphrase)
}

// GenerateKeyPair records metrics for key pair generation.
func (e *envelopeUseCaseWithMetrics) GenerateKeyPair(seed []byte) (cryptoDomain.KeyPair, error) {
	start := time.Now()
	pair, err := e.next.GenerateKeyPair(seed)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	e.metrics.RecordOperation(ctx, "envelope", "envelope_keypair_generate", status)
	e.metrics.RecordDuration(ctx, "envelope", "envelope_keypair_generate", time.Since(start), status)

	return pair, err
}

package usecase

import (
	"context"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"github.com/talegari/safer/internal/codec"
	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
	apperrors "github.com/talegari/safer/internal/errors"
)

// storeUseCase persists sealed objects through a gocloud blob bucket.
// Objects are stored in raw binary form; text encoding only matters for
// human-facing output, not at rest.
type storeUseCase struct {
	codec    codec.Codec
	envelope envelopeUseCase.UseCase
	bucket   *blob.Bucket
}

// NewStoreUseCase creates a store use case on top of a codec, the envelope,
// and an open bucket. The caller retains ownership of the bucket.
func NewStoreUseCase(c codec.Codec, envelope envelopeUseCase.UseCase, bucket *blob.Bucket) StoreUseCase {
	return &storeUseCase{
		codec:    c,
		envelope: envelope,
		bucket:   bucket,
	}
}

// Save serializes value, seals it under key, and writes it under name.
func (s *storeUseCase) Save(ctx context.Context, name string, value any, key cryptoDomain.Key) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "object name is required")
	}

	plaintext, err := s.codec.Marshal(value)
	if err != nil {
		return err
	}

	sealed, err := s.envelope.Seal(ctx, plaintext, key, cryptoDomain.Raw)
	if err != nil {
		return err
	}

	if err := s.bucket.WriteAll(ctx, name, sealed, nil); err != nil {
		return mapBucketError(err, "write object "+name)
	}
	return nil
}

// Retrieve reads the object under name, opens it with key, and deserializes
// it into target.
func (s *storeUseCase) Retrieve(ctx context.Context, name string, target any, key cryptoDomain.Key) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "object name is required")
	}

	sealed, err := s.bucket.ReadAll(ctx, name)
	if err != nil {
		return mapBucketError(err, "read object "+name)
	}

	plaintext, err := s.envelope.Open(ctx, sealed, key, cryptoDomain.Raw)
	if err != nil {
		return err
	}

	return s.codec.Unmarshal(plaintext, target)
}

// Delete removes the object under name.
func (s *storeUseCase) Delete(ctx context.Context, name string) error {
	if name == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "object name is required")
	}

	if err := s.bucket.Delete(ctx, name); err != nil {
		return mapBucketError(err, "delete object "+name)
	}
	return nil
}

// mapBucketError translates gocloud error codes into domain errors.
func mapBucketError(err error, message string) error {
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return apperrors.Wrap(apperrors.ErrNotFound, message)
	default:
		return apperrors.Wrap(apperrors.ErrUnavailable, message+": "+err.Error())
	}
}

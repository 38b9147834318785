// Package usecase implements the object store: encrypted-at-rest persistence
// of arbitrary Go values in a blob bucket.
package usecase

import (
	"context"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
)

// StoreUseCase persists Go values in a bucket, sealed under caller-supplied
// key material. Objects are serialized, encrypted, and written as raw bytes;
// retrieval reverses the pipeline.
type StoreUseCase interface {
	// Save serializes value, seals it under key, and writes the result to the
	// bucket under name. An existing object with the same name is replaced.
	Save(ctx context.Context, name string, value any, key cryptoDomain.Key) error

	// Retrieve reads the object stored under name, opens it with key, and
	// deserializes it into the value pointed to by target. Returns
	// errors.ErrNotFound when no object exists under name.
	Retrieve(ctx context.Context, name string, target any, key cryptoDomain.Key) error

	// Delete removes the object stored under name. Returns errors.ErrNotFound
	// when no object exists under name.
	Delete(ctx context.Context, name string) error
}

package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	"github.com/talegari/safer/internal/metrics"
)

// storeUseCaseWithMetrics decorates StoreUseCase with metrics instrumentation.
type storeUseCaseWithMetrics struct {
	next    StoreUseCase
	metrics metrics.BusinessMetrics
}

// NewStoreUseCaseWithMetrics wraps a StoreUseCase with metrics recording.
func NewStoreUseCaseWithMetrics(useCase StoreUseCase, m metrics.BusinessMetrics) StoreUseCase {
	return &storeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Save records metrics for object save operations.
func (s *storeUseCaseWithMetrics) Save(
	ctx context.Context,
	name string,
	value any,
	key cryptoDomain.Key,
) error {
	start := time.Now()
	err := s.next.Save(ctx, name, value, key)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "store", "store_save", status)
	s.metrics.RecordDuration(ctx, "store", "store_save", time.Since(start), status)

	return err
}

// Retrieve records metrics for object retrieval operations.
func (s *storeUseCaseWithMetrics) Retrieve(
	ctx context.Context,
	name string,
	target any,
	key cryptoDomain.Key,
) error {
	start := time.Now()
	err := s.next.Retrieve(ctx, name, target, key)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "store", "store_retrieve", status)
	s.metrics.RecordDuration(ctx, "store", "store_retrieve", time.Since(start), status)

	return err
}

// Delete records metrics for object deletion operations.
func (s *storeUseCaseWithMetrics) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := s.next.Delete(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "store", "store_delete", status)
	s.metrics.RecordDuration(ctx, "store", "store_delete", time.Since(start), status)

	return err
}

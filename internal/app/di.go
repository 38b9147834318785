// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gocloud.dev/blob"

	// Bucket drivers selectable through BLOB_BUCKET_URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"github.com/talegari/safer/internal/codec"
	"github.com/talegari/safer/internal/config"
	cryptoService "github.com/talegari/safer/internal/crypto/service"
	envelopeHTTP "github.com/talegari/safer/internal/envelope/http"
	envelopeUsecase "github.com/talegari/safer/internal/envelope/usecase"
	"github.com/talegari/safer/internal/http"
	"github.com/talegari/safer/internal/metrics"
	storeUsecase "github.com/talegari/safer/internal/store/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	bucket *blob.Bucket

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Use Cases
	envelopeUseCase envelopeUsecase.UseCase
	storeUseCase    storeUsecase.StoreUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	bucketInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	envelopeInit        sync.Once
	storeInit           sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Bucket returns the blob bucket used by the object store.
// It opens the bucket on first access using the configured URL.
func (c *Container) Bucket(ctx context.Context) (*blob.Bucket, error) {
	c.bucketInit.Do(func() {
		bucket, err := blob.OpenBucket(ctx, c.config.BlobBucketURL)
		if err != nil {
			c.initErrors["bucket"] = fmt.Errorf("failed to open bucket: %w", err)
			return
		}
		c.bucket = bucket
	})
	if storedErr, exists := c.initErrors["bucket"]; exists {
		return nil, storedErr
	}
	return c.bucket, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is
// returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}

		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// EnvelopeUseCase returns the envelope use case instance.
func (c *Container) EnvelopeUseCase() (envelopeUsecase.UseCase, error) {
	c.envelopeInit.Do(func() {
		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["envelopeUseCase"] = err
			return
		}

		useCase := envelopeUsecase.NewEnvelopeUseCase(
			cryptoService.NewKeyDeriver(),
			cryptoService.NewNonceProvider(),
			cryptoService.NewSecretboxCipher(),
			cryptoService.NewBoxCipher(),
			cryptoService.NewEncoder(),
			cryptoService.NewKeyPairGenerator(),
		)
		c.envelopeUseCase = envelopeUsecase.NewEnvelopeUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["envelopeUseCase"]; exists {
		return nil, storedErr
	}
	return c.envelopeUseCase, nil
}

// StoreUseCase returns the object store use case instance.
func (c *Container) StoreUseCase(ctx context.Context) (storeUsecase.StoreUseCase, error) {
	c.storeInit.Do(func() {
		envelope, err := c.EnvelopeUseCase()
		if err != nil {
			c.initErrors["storeUseCase"] = err
			return
		}

		bucket, err := c.Bucket(ctx)
		if err != nil {
			c.initErrors["storeUseCase"] = err
			return
		}

		bm, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["storeUseCase"] = err
			return
		}

		useCase := storeUsecase.NewStoreUseCase(codec.NewGobCodec(), envelope, bucket)
		c.storeUseCase = storeUsecase.NewStoreUseCaseWithMetrics(useCase, bm)
	})
	if storedErr, exists := c.initErrors["storeUseCase"]; exists {
		return nil, storedErr
	}
	return c.storeUseCase, nil
}

// HTTPServer returns the HTTP server instance with routes configured.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		logger := c.Logger()

		envelope, err := c.EnvelopeUseCase()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		bucket, err := c.Bucket(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}

		server := http.NewServer(bucket, c.config.ServerHost, c.config.ServerPort, logger)
		server.SetupRouter(http.RouterConfig{
			EnvelopeHandler:  envelopeHTTP.NewEnvelopeHandler(envelope, logger),
			MetricsProvider:  provider,
			Namespace:        c.config.MetricsNamespace,
			CORSEnabled:      c.config.CORSEnabled,
			CORSAllowOrigins: c.config.CORSAllowOrigins,
			RateLimitEnabled: c.config.RateLimitEnabled,
			RateLimitRPS:     c.config.RateLimitRequestsPerSec,
			RateLimitBurst:   c.config.RateLimitBurst,
		})

		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}

		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.bucket != nil {
		if err := c.bucket.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("bucket close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

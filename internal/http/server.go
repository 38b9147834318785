// Package http provides the HTTP server and its middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gocloud.dev/blob"

	envelopeHTTP "github.com/talegari/safer/internal/envelope/http"
	"github.com/talegari/safer/internal/metrics"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The bucket is only used by the
// readiness probe and may be nil, in which case /ready reports not ready.
func NewServer(
	bucket *blob.Bucket,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		bucket: bucket,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware settings for SetupRouter.
type RouterConfig struct {
	EnvelopeHandler *envelopeHTTP.EnvelopeHandler

	// MetricsProvider enables the HTTP metrics middleware when non-nil. The
	// exposition endpoint lives on the separate metrics server.
	MetricsProvider *metrics.Provider
	Namespace       string

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// SetupRouter builds the gin router: recovery, request ids, structured
// logging, optional CORS and rate limiting, then the API routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MetricsProvider.MeterProvider(), cfg.Namespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, s.logger))
	}

	if cfg.EnvelopeHandler != nil {
		v1.POST("/seal", cfg.EnvelopeHandler.SealHandler)
		v1.POST("/open", cfg.EnvelopeHandler.OpenHandler)
		v1.POST("/keypairs", cfg.EnvelopeHandler.GenerateKeyPairHandler)
	}

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler probes the blob bucket.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"storage": "ok"}

	ready := s.bucket != nil
	if ready {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		accessible, err := s.bucket.IsAccessible(ctx)
		ready = err == nil && accessible
	}

	if !ready {
		components["storage"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes. Returns nil
// before SetupRouter has been called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.SetupRouter(RouterConfig{})
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// Package http provides HTTP handlers for envelope seal, open, and key pair
// operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	"github.com/talegari/safer/internal/envelope/http/dto"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
	"github.com/talegari/safer/internal/httputil"
	customValidation "github.com/talegari/safer/internal/validation"
)

// EnvelopeHandler handles HTTP requests for seal and open operations.
type EnvelopeHandler struct {
	envelopeUseCase envelopeUseCase.UseCase
	logger          *slog.Logger
}

// NewEnvelopeHandler creates a new envelope handler with required dependencies.
func NewEnvelopeHandler(useCase envelopeUseCase.UseCase, logger *slog.Logger) *EnvelopeHandler {
	return &EnvelopeHandler{
		envelopeUseCase: useCase,
		logger:          logger,
	}
}

// SealHandler encrypts plaintext with the key material in the request.
// POST /v1/seal - Returns 200 OK with the sealed output.
func (h *EnvelopeHandler) SealHandler(c *gin.Context) {
	var req dto.SealRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	mode, err := cryptoDomain.ParseEncodingMode(req.Encoding)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	key, err := h.resolveKey(req.Passphrase, req.Key, req.PrivateKey, req.PublicKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Decode base64 plaintext
	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 plaintext: %w", err), h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	output, err := h.envelopeUseCase.Seal(c.Request.Context(), plaintext, key, mode)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSealResponse(output, mode))
}

// OpenHandler decrypts sealed input with the key material in the request.
// POST /v1/open - Returns 200 OK with the recovered plaintext.
func (h *EnvelopeHandler) OpenHandler(c *gin.Context) {
	var req dto.OpenRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	mode, err := cryptoDomain.ParseEncodingMode(req.Encoding)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	key, err := h.resolveKey(req.Passphrase, req.Key, req.PrivateKey, req.PublicKey)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	input, err := dto.WireBytes(req.Input, mode)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 input: %w", err), h.logger)
		return
	}

	plaintext, err := h.envelopeUseCase.Open(c.Request.Context(), input, key, mode)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Zero plaintext after mapping to response
	defer cryptoDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.MapOpenResponse(plaintext))
}

// GenerateKeyPairHandler generates a curve25519 key pair.
// POST /v1/keypairs - Returns 201 Created with the pair and its seed.
func (h *EnvelopeHandler) GenerateKeyPairHandler(c *gin.Context) {
	var req dto.GenerateKeyPairRequest

	// An empty body means a random pair
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.HandleBadRequestGin(c, err, h.logger)
			return
		}
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var seed []byte
	if req.Seed != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Seed)
		if err != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 seed: %w", err), h.logger)
			return
		}
		seed = decoded
	}

	pair, err := h.envelopeUseCase.GenerateKeyPair(seed)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGenerateKeyPairResponse(pair))
}

// resolveKey builds key material from the request fields. DTO validation has
// already established that exactly one source is present and that encoded
// keys decode to 32 bytes.
func (h *EnvelopeHandler) resolveKey(passphrase, key, privateKey, publicKey string) (cryptoDomain.Key, error) {
	switch {
	case passphrase != "":
		return h.envelopeUseCase.PassphraseKey(passphrase)
	case key != "":
		raw, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			return cryptoDomain.Key{}, cryptoDomain.ErrKeyMaterial
		}
		return cryptoDomain.NewSymmetricKey(raw)
	default:
		private, err := base64.StdEncoding.DecodeString(privateKey)
		if err != nil {
			return cryptoDomain.Key{}, cryptoDomain.ErrKeyMaterial
		}
		public, err := base64.StdEncoding.DecodeString(publicKey)
		if err != nil {
			return cryptoDomain.Key{}, cryptoDomain.ErrKeyMaterial
		}
		return cryptoDomain.NewBoxKey(private, public)
	}
}

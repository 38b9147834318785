// Package integration provides end-to-end tests for the envelope API.
// Tests run the full container wiring against an in-memory blob bucket.
package integration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talegari/safer/internal/app"
	"github.com/talegari/safer/internal/config"
	"github.com/talegari/safer/internal/envelope/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NoError(t, resp.Body.Close())

	return resp, respBody
}

// setupIntegrationTest wires the full container against an in-memory bucket
// and serves the router through httptest.
func setupIntegrationTest(t *testing.T) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost:       "localhost",
		ServerPort:       0,
		LogLevel:         "error",
		BlobBucketURL:    "mem://",
		RateLimitEnabled: false,
		MetricsEnabled:   false,
	}

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer(context.Background())
	require.NoError(t, err, "failed to initialize HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	testServer := httptest.NewServer(handler)

	t.Cleanup(func() {
		testServer.Close()
		_ = container.Shutdown(context.Background())
	})

	return &integrationTestContext{
		container: container,
		server:    testServer,
	}
}

func TestHealthEndpoints(t *testing.T) {
	ctx := setupIntegrationTest(t)

	t.Run("health", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "healthy")
	})

	t.Run("ready", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "ready")
	})
}

func TestSealOpenFlow(t *testing.T) {
	ctx := setupIntegrationTest(t)
	plaintext := base64.StdEncoding.EncodeToString([]byte("hello, how are you"))

	t.Run("symmetric round-trip", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/seal", dto.SealRequest{
			Plaintext:  plaintext,
			Passphrase: "secret",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var sealResp dto.SealResponse
		require.NoError(t, json.Unmarshal(body, &sealResp))
		require.NotEmpty(t, sealResp.Output)
		assert.Equal(t, "text", sealResp.Encoding)

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/open", dto.OpenRequest{
			Input:      sealResp.Output,
			Passphrase: "secret",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var openResp dto.OpenResponse
		require.NoError(t, json.Unmarshal(body, &openResp))
		assert.Equal(t, plaintext, openResp.Plaintext)
	})

	t.Run("wrong passphrase is rejected", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/seal", dto.SealRequest{
			Plaintext:  plaintext,
			Passphrase: "secret",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var sealResp dto.SealResponse
		require.NoError(t, json.Unmarshal(body, &sealResp))

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/open", dto.OpenRequest{
			Input:      sealResp.Output,
			Passphrase: "nopass",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(body), "invalid_input")
	})

	t.Run("asymmetric round-trip", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/keypairs", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
		var alice dto.GenerateKeyPairResponse
		require.NoError(t, json.Unmarshal(body, &alice))

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/keypairs", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
		var bob dto.GenerateKeyPairResponse
		require.NoError(t, json.Unmarshal(body, &bob))

		message := base64.StdEncoding.EncodeToString([]byte("hello asymmetric"))

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/seal", dto.SealRequest{
			Plaintext:  message,
			PrivateKey: alice.PrivateKey,
			PublicKey:  bob.PublicKey,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		var sealResp dto.SealResponse
		require.NoError(t, json.Unmarshal(body, &sealResp))

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/open", dto.OpenRequest{
			Input:      sealResp.Output,
			PrivateKey: bob.PrivateKey,
			PublicKey:  alice.PublicKey,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

		var openResp dto.OpenResponse
		require.NoError(t, json.Unmarshal(body, &openResp))
		assert.Equal(t, message, openResp.Plaintext)
	})

	t.Run("validation failure", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/seal", dto.SealRequest{
			Plaintext: plaintext,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(body), "validation")
	})
}

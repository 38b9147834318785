package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
)

func TestRunEncryptString(t *testing.T) {
	ctx := context.Background()
	envelope := newTestEnvelope(t)

	t.Run("round-trip-with-passphrase", func(t *testing.T) {
		var sealed bytes.Buffer
		err := RunEncryptString(ctx, envelope, &sealed, "hello, how are you", "secret", "", "")
		require.NoError(t, err)

		var plaintext bytes.Buffer
		err = RunDecryptString(
			ctx, envelope, &plaintext,
			strings.TrimSpace(sealed.String()), "secret", "", "",
		)
		require.NoError(t, err)
		require.Equal(t, "hello, how are you\n", plaintext.String())
	})

	t.Run("round-trip-with-key-pair", func(t *testing.T) {
		alice, err := envelope.GenerateKeyPair(nil)
		require.NoError(t, err)
		bob, err := envelope.GenerateKeyPair(nil)
		require.NoError(t, err)

		alicePrivate := base64.StdEncoding.EncodeToString(alice.PrivateKey)
		alicePublic := base64.StdEncoding.EncodeToString(alice.PublicKey)
		bobPrivate := base64.StdEncoding.EncodeToString(bob.PrivateKey)
		bobPublic := base64.StdEncoding.EncodeToString(bob.PublicKey)

		var sealed bytes.Buffer
		err = RunEncryptString(
			ctx, envelope, &sealed,
			"hello asymmetric", "", alicePrivate, bobPublic,
		)
		require.NoError(t, err)

		var plaintext bytes.Buffer
		err = RunDecryptString(
			ctx, envelope, &plaintext,
			strings.TrimSpace(sealed.String()), "", bobPrivate, alicePublic,
		)
		require.NoError(t, err)
		require.Equal(t, "hello asymmetric\n", plaintext.String())
	})

	t.Run("wrong-passphrase", func(t *testing.T) {
		var sealed bytes.Buffer
		err := RunEncryptString(ctx, envelope, &sealed, "hello, how are you", "secret", "", "")
		require.NoError(t, err)

		var plaintext bytes.Buffer
		err = RunDecryptString(
			ctx, envelope, &plaintext,
			strings.TrimSpace(sealed.String()), "nopass", "", "",
		)
		require.Error(t, err)
		require.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
	})

	t.Run("invalid-base64-key-pair", func(t *testing.T) {
		var sealed bytes.Buffer
		err := RunEncryptString(ctx, envelope, &sealed, "hello", "", "not base64!", "also bad")
		require.Error(t, err)
		require.ErrorIs(t, err, cryptoDomain.ErrKeyMaterial)
	})

	t.Run("decrypt-garbage-input", func(t *testing.T) {
		var plaintext bytes.Buffer
		err := RunDecryptString(ctx, envelope, &plaintext, "!!! not base64 !!!", "secret", "", "")
		require.Error(t, err)
		require.ErrorIs(t, err, cryptoDomain.ErrEncoding)
	})
}

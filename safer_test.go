package safer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type testNote struct {
	Title string
	Body  string
	Tags  []string
}

func TestSafer_Strings(t *testing.T) {
	ctx := context.Background()
	s := New()

	t.Run("round-trip", func(t *testing.T) {
		key, err := s.PassphraseKey("secret")
		require.NoError(t, err)

		sealed, err := s.EncryptString(ctx, "hello, how are you", key)
		require.NoError(t, err)
		require.NotEqual(t, "hello, how are you", sealed)

		plaintext, err := s.DecryptString(ctx, sealed, key)
		require.NoError(t, err)
		assert.Equal(t, "hello, how are you", plaintext)
	})

	t.Run("wrong-passphrase", func(t *testing.T) {
		key, err := s.PassphraseKey("secret")
		require.NoError(t, err)
		wrong, err := s.PassphraseKey("nopass")
		require.NoError(t, err)

		sealed, err := s.EncryptString(ctx, "hello, how are you", key)
		require.NoError(t, err)

		_, err = s.DecryptString(ctx, sealed, wrong)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("asymmetric-round-trip", func(t *testing.T) {
		alice, err := s.GenerateKeyPair(nil)
		require.NoError(t, err)
		bob, err := s.GenerateKeyPair(nil)
		require.NoError(t, err)

		sealKey, err := BoxKey(alice.PrivateKey, bob.PublicKey)
		require.NoError(t, err)
		openKey, err := BoxKey(bob.PrivateKey, alice.PublicKey)
		require.NoError(t, err)

		sealed, err := s.EncryptString(ctx, "hello asymmetric", sealKey)
		require.NoError(t, err)

		plaintext, err := s.DecryptString(ctx, sealed, openKey)
		require.NoError(t, err)
		assert.Equal(t, "hello asymmetric", plaintext)
	})

	t.Run("raw-symmetric-key", func(t *testing.T) {
		raw := make([]byte, 32)
		for i := range raw {
			raw[i] = byte(i)
		}
		key, err := SymmetricKey(raw)
		require.NoError(t, err)

		sealed, err := s.EncryptString(ctx, "raw key material", key)
		require.NoError(t, err)

		plaintext, err := s.DecryptString(ctx, sealed, key)
		require.NoError(t, err)
		assert.Equal(t, "raw key material", plaintext)
	})

	t.Run("invalid-base64-input", func(t *testing.T) {
		key, err := s.PassphraseKey("secret")
		require.NoError(t, err)

		_, err = s.DecryptString(ctx, "!!! not base64 !!!", key)
		require.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("short-raw-key", func(t *testing.T) {
		_, err := SymmetricKey([]byte("short"))
		require.ErrorIs(t, err, ErrKeyMaterial)
	})
}

func TestSafer_Objects(t *testing.T) {
	ctx := context.Background()
	s := New()

	key, err := s.PassphraseKey("secret")
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		note := testNote{Title: "groceries", Body: "milk, eggs", Tags: []string{"home"}}

		sealed, err := s.EncryptObject(ctx, note, key)
		require.NoError(t, err)

		var recovered testNote
		require.NoError(t, s.DecryptObject(ctx, sealed, &recovered, key))
		assert.Equal(t, note, recovered)
	})

	t.Run("wrong-key", func(t *testing.T) {
		wrong, err := s.PassphraseKey("nopass")
		require.NoError(t, err)

		sealed, err := s.EncryptObject(ctx, testNote{Title: "x"}, key)
		require.NoError(t, err)

		var recovered testNote
		err = s.DecryptObject(ctx, sealed, &recovered, wrong)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestSafer_Files(t *testing.T) {
	ctx := context.Background()
	s := New()

	key, err := s.PassphraseKey("secret")
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		dir := t.TempDir()
		inPath := filepath.Join(dir, "plain.txt")
		sealedPath := filepath.Join(dir, "sealed.bin")
		outPath := filepath.Join(dir, "recovered.txt")

		content := []byte("file contents\nwith newlines\x00and binary bytes")
		require.NoError(t, os.WriteFile(inPath, content, 0o600))

		require.NoError(t, s.EncryptFile(ctx, inPath, sealedPath, key))
		require.NoError(t, s.DecryptFile(ctx, sealedPath, outPath, key))

		recovered, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, content, recovered)
	})

	t.Run("tampered-file", func(t *testing.T) {
		dir := t.TempDir()
		inPath := filepath.Join(dir, "plain.txt")
		sealedPath := filepath.Join(dir, "sealed.bin")
		require.NoError(t, os.WriteFile(inPath, []byte("data"), 0o600))
		require.NoError(t, s.EncryptFile(ctx, inPath, sealedPath, key))

		sealed, err := os.ReadFile(sealedPath)
		require.NoError(t, err)
		sealed[0] ^= 0xff
		require.NoError(t, os.WriteFile(sealedPath, sealed, 0o600))

		err = s.DecryptFile(ctx, sealedPath, filepath.Join(dir, "out"), key)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestSafer_Storage(t *testing.T) {
	ctx := context.Background()
	s := New()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	key, err := s.PassphraseKey("secret")
	require.NoError(t, err)

	t.Run("round-trip", func(t *testing.T) {
		note := testNote{Title: "stored", Body: "encrypted at rest"}

		require.NoError(t, s.SaveObject(ctx, bucket, "notes/stored", note, key))

		var recovered testNote
		require.NoError(t, s.RetrieveObject(ctx, bucket, "notes/stored", &recovered, key))
		assert.Equal(t, note, recovered)
	})

	t.Run("wrong-key", func(t *testing.T) {
		wrong, err := s.PassphraseKey("nopass")
		require.NoError(t, err)

		require.NoError(t, s.SaveObject(ctx, bucket, "notes/guarded", testNote{Title: "g"}, key))

		var recovered testNote
		err = s.RetrieveObject(ctx, bucket, "notes/guarded", &recovered, wrong)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

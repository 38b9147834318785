package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/talegari/safer/internal/codec"
	"github.com/talegari/safer/internal/errors"
	storeUseCase "github.com/talegari/safer/internal/store/usecase"
)

func TestRunStorePutGet(t *testing.T) {
	ctx := context.Background()
	envelope := newTestEnvelope(t)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	store := storeUseCase.NewStoreUseCase(codec.NewGobCodec(), envelope, bucket)

	t.Run("round-trip", func(t *testing.T) {
		err := RunStorePut(ctx, store, envelope, "greeting", "hello, how are you", "secret", "", "")
		require.NoError(t, err)

		var buf bytes.Buffer
		err = RunStoreGet(ctx, store, envelope, &buf, "greeting", "secret", "", "")
		require.NoError(t, err)
		require.Equal(t, "hello, how are you\n", buf.String())
	})

	t.Run("wrong-passphrase", func(t *testing.T) {
		err := RunStorePut(ctx, store, envelope, "guarded", "value", "secret", "", "")
		require.NoError(t, err)

		var buf bytes.Buffer
		err = RunStoreGet(ctx, store, envelope, &buf, "guarded", "nopass", "", "")
		require.Error(t, err)
	})

	t.Run("missing-object", func(t *testing.T) {
		var buf bytes.Buffer
		err := RunStoreGet(ctx, store, envelope, &buf, "absent", "secret", "", "")
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := RunStorePut(ctx, store, envelope, "doomed", "value", "secret", "", "")
		require.NoError(t, err)

		require.NoError(t, RunStoreDelete(ctx, store, "doomed"))

		var buf bytes.Buffer
		err = RunStoreGet(ctx, store, envelope, &buf, "doomed", "secret", "", "")
		require.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("delete-missing", func(t *testing.T) {
		err := RunStoreDelete(ctx, store, "never-existed")
		require.ErrorIs(t, err, errors.ErrNotFound)
	})
}

package service

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talegari/safer/internal/crypto/domain"
)

func TestBase64Encoder_Encode(t *testing.T) {
	encoder := NewEncoder()

	t.Run("raw mode is a pass-through", func(t *testing.T) {
		data := []byte{0x00, 0xff, 0x10}

		out, err := encoder.Encode(data, domain.Raw)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("text mode produces base64 ASCII", func(t *testing.T) {
		out, err := encoder.Encode([]byte("hello"), domain.Text)
		require.NoError(t, err)
		assert.Equal(t, []byte("aGVsbG8="), out)
	})

	t.Run("text output contains no newlines", func(t *testing.T) {
		data := make([]byte, 4096)
		_, err := rand.Read(data)
		require.NoError(t, err)

		out, err := encoder.Encode(data, domain.Text)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "\n")
	})
}

func TestBase64Encoder_Decode(t *testing.T) {
	encoder := NewEncoder()

	t.Run("raw mode is a pass-through", func(t *testing.T) {
		data := []byte("anything at all")

		out, err := encoder.Decode(data, domain.Raw)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("invalid base64 in text mode", func(t *testing.T) {
		_, err := encoder.Decode([]byte("not base64!!"), domain.Text)
		assert.ErrorIs(t, err, domain.ErrEncoding)
	})
}

func TestBase64Encoder_RoundTrip(t *testing.T) {
	encoder := NewEncoder()

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single byte", data: []byte{0x00}},
		{name: "binary", data: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "long", data: bytes.Repeat([]byte{0xab}, 100000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := encoder.Encode(tc.data, domain.Text)
			require.NoError(t, err)

			decoded, err := encoder.Decode(encoded, domain.Text)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.data, decoded))
		})
	}
}

package service

import (
	"encoding/base64"

	"github.com/talegari/safer/internal/crypto/domain"
)

// Base64Encoder implements Encoder with standard base64 for text mode.
//
// Round-trip law: Decode(Encode(b, Text), Text) == b for every byte sequence
// b, including the empty one. Raw mode is a pass-through in both directions.
type Base64Encoder struct{}

// NewEncoder creates a new Base64Encoder.
func NewEncoder() *Base64Encoder {
	return &Base64Encoder{}
}

// Encode applies mode to b. Text mode produces base64 ASCII with no embedded
// newlines or padding variants Decode cannot strip.
func (e *Base64Encoder) Encode(b []byte, mode domain.EncodingMode) ([]byte, error) {
	switch mode {
	case domain.Raw:
		return b, nil
	case domain.Text:
		out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
		base64.StdEncoding.Encode(out, b)
		return out, nil
	default:
		return nil, domain.ErrEncoding
	}
}

// Decode is the inverse of Encode. Returns domain.ErrEncoding when b is not
// valid base64 and Text mode is requested.
func (e *Base64Encoder) Decode(b []byte, mode domain.EncodingMode) ([]byte, error) {
	switch mode {
	case domain.Raw:
		return b, nil
	case domain.Text:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
		n, err := base64.StdEncoding.Decode(out, b)
		if err != nil {
			return nil, domain.ErrEncoding
		}
		return out[:n], nil
	default:
		return nil, domain.ErrEncoding
	}
}

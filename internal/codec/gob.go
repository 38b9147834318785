package codec

import (
	"bytes"
	"encoding/gob"

	apperrors "github.com/talegari/safer/internal/errors"
)

// GobCodec serializes values with encoding/gob. Gob is self-describing and
// round-trips any exported Go value without per-type registration, which is
// exactly what the object and store front-ends need; the wire format is not
// meant to be read by anything but this module.
type GobCodec struct{}

// NewGobCodec creates a gob-based codec.
func NewGobCodec() *GobCodec {
	return &GobCodec{}
}

// Marshal serializes value into gob bytes.
func (c *GobCodec) Marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "gob encode failed: "+err.Error())
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes gob bytes into target, which must be a pointer.
func (c *GobCodec) Unmarshal(data []byte, target any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(target); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "gob decode failed: "+err.Error())
	}
	return nil
}

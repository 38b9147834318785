package dto

import (
	"encoding/base64"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
)

// SealResponse contains the sealed output. Text output is returned as-is;
// raw output is base64-wrapped for JSON transport.
type SealResponse struct {
	Output   string `json:"output"`
	Encoding string `json:"encoding"`
}

// MapSealResponse builds a SealResponse from envelope output.
func MapSealResponse(output []byte, mode cryptoDomain.EncodingMode) SealResponse {
	return SealResponse{
		Output:   wireString(output, mode),
		Encoding: mode.String(),
	}
}

// OpenResponse contains the recovered plaintext, base64-encoded.
type OpenResponse struct {
	Plaintext string `json:"plaintext"`
}

// MapOpenResponse builds an OpenResponse from recovered plaintext.
func MapOpenResponse(plaintext []byte) OpenResponse {
	return OpenResponse{
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
	}
}

// GenerateKeyPairResponse contains a generated key pair, all parts
// base64-encoded. The seed is echoed so random pairs can be regenerated.
type GenerateKeyPairResponse struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Seed       string `json:"seed"`
}

// MapGenerateKeyPairResponse builds a response from a generated key pair.
func MapGenerateKeyPairResponse(pair cryptoDomain.KeyPair) GenerateKeyPairResponse {
	return GenerateKeyPairResponse{
		PrivateKey: base64.StdEncoding.EncodeToString(pair.PrivateKey),
		PublicKey:  base64.StdEncoding.EncodeToString(pair.PublicKey),
		Seed:       base64.StdEncoding.EncodeToString(pair.Seed),
	}
}

// wireString converts envelope bytes to their JSON representation: text mode
// output is already printable, raw mode bytes get base64-wrapped.
func wireString(b []byte, mode cryptoDomain.EncodingMode) string {
	if mode == cryptoDomain.Text {
		return string(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// WireBytes is the inverse of wireString: it recovers envelope input bytes
// from their JSON representation.
func WireBytes(s string, mode cryptoDomain.EncodingMode) ([]byte, error) {
	if mode == cryptoDomain.Text {
		return []byte(s), nil
	}
	return base64.StdEncoding.DecodeString(s)
}

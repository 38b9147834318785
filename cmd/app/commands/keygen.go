package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	cryptoDomain "github.com/talegari/safer/internal/crypto/domain"
	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
)

// RunKeygen generates a curve25519 key pair and writes it to w.
// When seedB64 is non-empty it must decode to 32 bytes and the pair is
// derived deterministically from it; otherwise a random seed is drawn.
// Format is "text" or "json".
func RunKeygen(envelope envelopeUseCase.UseCase, w io.Writer, seedB64, format string) error {
	var seed []byte
	if seedB64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(seedB64)
		if err != nil {
			return fmt.Errorf("invalid base64 seed: %w", err)
		}
		seed = decoded
	}

	pair, err := envelope.GenerateKeyPair(seed)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}
	defer cryptoDomain.Zero(pair.PrivateKey)
	defer cryptoDomain.Zero(pair.Seed)

	privateB64 := base64.StdEncoding.EncodeToString(pair.PrivateKey)
	publicB64 := base64.StdEncoding.EncodeToString(pair.PublicKey)
	outSeedB64 := base64.StdEncoding.EncodeToString(pair.Seed)

	if format == "json" {
		payload := map[string]string{
			"private_key": privateB64,
			"public_key":  publicB64,
			"seed":        outSeedB64,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	fmt.Fprintf(w, "Private key: %s\n", privateB64)
	fmt.Fprintf(w, "Public key:  %s\n", publicB64)
	fmt.Fprintf(w, "Seed:        %s\n", outSeedB64)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Store the private key and seed securely; the public key may be shared.")

	return nil
}

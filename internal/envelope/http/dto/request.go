// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/talegari/safer/internal/validation"
)

// SealRequest contains the parameters for sealing data.
//
// Exactly one key source must be provided: a passphrase, a raw symmetric key,
// or a private/public key pair. Plaintext is base64-encoded for JSON
// transport regardless of the requested output encoding.
type SealRequest struct {
	Plaintext  string `json:"plaintext"`             // Base64-encoded plaintext
	Passphrase string `json:"passphrase,omitempty"`  // Symmetric via derivation
	Key        string `json:"key,omitempty"`         // Base64, raw 32-byte symmetric key
	PrivateKey string `json:"private_key,omitempty"` // Base64, own curve25519 private key
	PublicKey  string `json:"public_key,omitempty"`  // Base64, peer curve25519 public key
	Encoding   string `json:"encoding,omitempty"`    // "raw" or "text"; empty means "text"
}

// Validate checks if the seal request is valid.
func (r *SealRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.Key,
			customValidation.Key32,
		),
		validation.Field(&r.PrivateKey,
			customValidation.Key32,
		),
		validation.Field(&r.PublicKey,
			customValidation.Key32,
		),
		validation.Field(&r.Encoding,
			customValidation.EncodingMode,
		),
	); err != nil {
		return err
	}
	return validateKeySource(r.Passphrase, r.Key, r.PrivateKey, r.PublicKey)
}

// OpenRequest contains the parameters for opening sealed data. Input carries
// the sealed bytes: the text string itself for text encoding, base64-wrapped
// bytes for raw encoding.
type OpenRequest struct {
	Input      string `json:"input"`
	Passphrase string `json:"passphrase,omitempty"`
	Key        string `json:"key,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
	Encoding   string `json:"encoding,omitempty"`
}

// Validate checks if the open request is valid.
func (r *OpenRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Input,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Key,
			customValidation.Key32,
		),
		validation.Field(&r.PrivateKey,
			customValidation.Key32,
		),
		validation.Field(&r.PublicKey,
			customValidation.Key32,
		),
		validation.Field(&r.Encoding,
			customValidation.EncodingMode,
		),
	); err != nil {
		return err
	}
	return validateKeySource(r.Passphrase, r.Key, r.PrivateKey, r.PublicKey)
}

// GenerateKeyPairRequest contains the parameters for generating a key pair.
type GenerateKeyPairRequest struct {
	Seed string `json:"seed,omitempty"` // Base64, optional 32-byte seed
}

// Validate checks if the key pair request is valid.
func (r *GenerateKeyPairRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Seed,
			customValidation.Key32,
		),
	)
}

// validateKeySource enforces that exactly one key source is present: a
// passphrase, a raw key, or a complete private/public pair.
func validateKeySource(passphrase, key, privateKey, publicKey string) error {
	sources := 0
	if passphrase != "" {
		sources++
	}
	if key != "" {
		sources++
	}
	if privateKey != "" || publicKey != "" {
		if privateKey == "" || publicKey == "" {
			return validation.NewError(
				"validation_key_source",
				"private_key and public_key must be provided together",
			)
		}
		sources++
	}
	if sources != 1 {
		return validation.NewError(
			"validation_key_source",
			"exactly one of passphrase, key, or private_key/public_key is required",
		)
	}
	return nil
}

package domain

import "fmt"

// EncodingMode selects the at-rest representation of ciphertext.
type EncodingMode int

const (
	// Raw passes ciphertext bytes through unchanged.
	Raw EncodingMode = iota
	// Text represents ciphertext as standard base64 ASCII.
	Text
)

// String returns the mode name for logs and metrics labels.
func (m EncodingMode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// ParseEncodingMode converts a mode name to an EncodingMode.
// The empty string maps to Text, the default for the string front-ends.
func ParseEncodingMode(s string) (EncodingMode, error) {
	switch s {
	case "raw":
		return Raw, nil
	case "text", "":
		return Text, nil
	default:
		return Raw, fmt.Errorf("%w: unknown encoding mode %q", ErrEncoding, s)
	}
}

// Package codec serializes arbitrary Go values for the object front-ends.
// The envelope only ever sees the resulting bytes.
package codec

// Codec converts between Go values and their byte representation.
type Codec interface {
	// Marshal serializes value into bytes.
	Marshal(value any) ([]byte, error)

	// Unmarshal deserializes data into the value pointed to by target.
	Unmarshal(data []byte, target any) error
}

// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/talegari/safer/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// EncodingMode validates that a string names a supported encoding mode.
var EncodingMode = validation.NewStringRuleWithError(
	func(s string) bool {
		switch s {
		case "", "raw", "text":
			return true
		default:
			return false
		}
	},
	validation.NewError("validation_encoding_mode", "must be 'raw' or 'text'"),
)

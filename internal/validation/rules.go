// Package validation provides custom validation rules for the application.
package validation

import (
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/passgen/internal/errors"
	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PoolNames validates that a []string contains only supported pool names.
type PoolNames struct{}

// Validate checks every element against the supported pools.
func (PoolNames) Validate(value interface{}) error {
	names, ok := value.([]string)
	if !ok {
		return validation.NewError("validation_pool_names", "pools must be a list of strings")
	}

	for _, name := range names {
		if _, err := generatorDomain.ParsePool(name); err != nil {
			return validation.NewError(
				"validation_pool_names",
				"pools must be any of: lowercase, uppercase, digits, symbols",
			)
		}
	}

	return nil
}

// PrintableASCII validates that a string contains only printable ASCII
// characters. Used for exclusion lists and separators so generated output
// stays paste-safe.
type PrintableASCII struct{}

// Validate checks every rune is printable ASCII.
func (PrintableASCII) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_printable_ascii", "value must be a string")
	}

	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return validation.NewError(
				"validation_printable_ascii",
				"value must contain only printable ASCII characters",
			)
		}
	}

	return nil
}

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/passgen/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("Success_NilPassesThrough", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("Success_WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(errors.New("length must be positive"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "length must be positive")
	})
}

func TestPoolNames_Validate(t *testing.T) {
	rule := PoolNames{}

	t.Run("Success_KnownPools", func(t *testing.T) {
		assert.NoError(t, rule.Validate([]string{"lowercase", "uppercase", "digits", "symbols"}))
	})

	t.Run("Success_EmptyList", func(t *testing.T) {
		assert.NoError(t, rule.Validate([]string{}))
	})

	t.Run("Error_UnknownPool", func(t *testing.T) {
		assert.Error(t, rule.Validate([]string{"lowercase", "hex"}))
	})

	t.Run("Error_NotAStringSlice", func(t *testing.T) {
		assert.Error(t, rule.Validate("lowercase"))
	})
}

func TestPrintableASCII_Validate(t *testing.T) {
	rule := PrintableASCII{}

	t.Run("Success_PrintableText", func(t *testing.T) {
		assert.NoError(t, rule.Validate("~!@# abcXYZ123"))
	})

	t.Run("Success_EmptyString", func(t *testing.T) {
		assert.NoError(t, rule.Validate(""))
	})

	t.Run("Error_ControlCharacter", func(t *testing.T) {
		assert.Error(t, rule.Validate("abc\x00"))
		assert.Error(t, rule.Validate("abc\n"))
	})

	t.Run("Error_NonASCII", func(t *testing.T) {
		assert.Error(t, rule.Validate("café"))
	})

	t.Run("Error_NotAString", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

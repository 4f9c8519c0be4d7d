// Package domain implements palindrome testing and construction. Both
// operations are rune-wise so multi-byte characters mirror correctly.
package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

// ErrInvalidCenter indicates a mirror center longer than one character.
var ErrInvalidCenter = errors.Wrap(errors.ErrInvalidInput, "center must be a single character")

// IsPalindrome reports whether the text equals its reverse. The empty string
// and single characters are trivially palindromes.
func IsPalindrome(text string) bool {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// Mirror constructs a palindrome from a half-sequence by appending its
// reverse, with an optional single-character center: Mirror("ab", "") returns
// "abba" and Mirror("ab", "c") returns "abcba".
func Mirror(half, center string) (string, error) {
	centerRunes := []rune(center)
	if len(centerRunes) > 1 {
		return "", ErrInvalidCenter
	}

	halfRunes := []rune(half)
	result := make([]rune, 0, len(halfRunes)*2+len(centerRunes))
	result = append(result, halfRunes...)
	result = append(result, centerRunes...)
	for i := len(halfRunes) - 1; i >= 0; i-- {
		result = append(result, halfRunes[i])
	}

	return string(result), nil
}

// Package usecase exposes palindrome operations behind the same use case shape
// as the rest of the application so handlers and commands stay uniform.
package usecase

import (
	"context"

	palindromeDomain "github.com/allisson/passgen/internal/palindrome/domain"
)

// PalindromeUseCase defines the interface for palindrome operations.
type PalindromeUseCase interface {
	// Check reports whether the text equals its reverse.
	Check(ctx context.Context, text string) bool
	// Mirror builds a palindrome from a half-sequence and an optional
	// single-character center.
	Mirror(ctx context.Context, half, center string) (string, error)
}

// palindromeUseCase implements PalindromeUseCase over the pure domain functions.
type palindromeUseCase struct{}

// NewPalindromeUseCase creates a palindrome use case.
func NewPalindromeUseCase() PalindromeUseCase {
	return &palindromeUseCase{}
}

// Check reports whether the text is a palindrome.
func (p *palindromeUseCase) Check(ctx context.Context, text string) bool {
	return palindromeDomain.IsPalindrome(text)
}

// Mirror builds a palindrome from the half-sequence.
func (p *palindromeUseCase) Mirror(ctx context.Context, half, center string) (string, error) {
	return palindromeDomain.Mirror(half, center)
}

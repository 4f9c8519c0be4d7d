package commands

import (
	"context"
	"fmt"

	palindromeUseCase "github.com/allisson/passgen/internal/palindrome/usecase"
)

// PalindromeCheckParams holds the parsed CLI options for the palindrome check.
type PalindromeCheckParams struct {
	Text   string
	Format string
}

// PalindromeMakeParams holds the parsed CLI options for palindrome construction.
type PalindromeMakeParams struct {
	Half   string
	Center string
	Format string
}

// RunCheckPalindrome reports whether the given text reads the same forwards
// and backwards.
func RunCheckPalindrome(
	ctx context.Context,
	useCase palindromeUseCase.PalindromeUseCase,
	io IOTuple,
	params PalindromeCheckParams,
) error {
	if err := validateFormat(params.Format); err != nil {
		return err
	}

	isPalindrome := useCase.Check(ctx, params.Text)

	if params.Format == "json" {
		return printJSON(io.Writer, map[string]any{
			"text":       params.Text,
			"palindrome": isPalindrome,
		})
	}

	if isPalindrome {
		fmt.Fprintf(io.Writer, "%q is a palindrome\n", params.Text)
	} else {
		fmt.Fprintf(io.Writer, "%q is not a palindrome\n", params.Text)
	}

	return nil
}

// RunMirrorPalindrome builds a palindrome by mirroring the given half around
// an optional single-character center.
func RunMirrorPalindrome(
	ctx context.Context,
	useCase palindromeUseCase.PalindromeUseCase,
	io IOTuple,
	params PalindromeMakeParams,
) error {
	if err := validateFormat(params.Format); err != nil {
		return err
	}

	result, err := useCase.Mirror(ctx, params.Half, params.Center)
	if err != nil {
		return fmt.Errorf("failed to build palindrome: %w", err)
	}

	if params.Format == "json" {
		return printJSON(io.Writer, map[string]any{
			"palindrome": result,
		})
	}

	fmt.Fprintln(io.Writer, result)

	return nil
}

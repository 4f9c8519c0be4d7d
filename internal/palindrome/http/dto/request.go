// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// maxTextLength bounds palindrome inputs to keep requests small.
const maxTextLength = 4096

// CheckPalindromeRequest contains the text to test.
// An empty text is valid: the empty string is trivially a palindrome.
type CheckPalindromeRequest struct {
	Text string `json:"text"`
}

// Validate checks if the palindrome check request is valid.
func (r *CheckPalindromeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.RuneLength(0, maxTextLength),
		),
	)
}

// MirrorPalindromeRequest contains the half-sequence to mirror and an optional
// single-character center.
type MirrorPalindromeRequest struct {
	Half   string `json:"half"`
	Center string `json:"center"`
}

// Validate checks if the mirror request is valid.
func (r *MirrorPalindromeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Half,
			validation.RuneLength(0, maxTextLength/2),
		),
		validation.Field(&r.Center,
			validation.RuneLength(0, 1),
		),
	)
}

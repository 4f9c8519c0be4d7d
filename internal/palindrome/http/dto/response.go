package dto

// CheckPalindromeResponse reports whether the text is a palindrome.
type CheckPalindromeResponse struct {
	Text       string `json:"text"`
	Palindrome bool   `json:"palindrome"`
}

// MirrorPalindromeResponse carries the constructed palindrome.
type MirrorPalindromeResponse struct {
	Palindrome string `json:"palindrome"`
	Length     int    `json:"length"`
}

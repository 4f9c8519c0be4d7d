// Package domain defines the core domain models and types for constrained random
// pass-string generation. A pass-string is composed from immutable named character
// pools; every selected pool must contribute a minimum number of characters to the
// final result.
package domain

import "strings"

// PoolName identifies an immutable character pool.
type PoolName string

// Supported character pools.
const (
	PoolLowercase PoolName = "lowercase"
	PoolUppercase PoolName = "uppercase"
	PoolDigits    PoolName = "digits"
	PoolSymbols   PoolName = "symbols"
)

// Character sets backing each pool. The symbol set intentionally avoids
// characters that break on copy/paste into shells and login forms.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "~!@#$%^&*_-+="
)

// AllPools lists every supported pool in a stable order.
func AllPools() []PoolName {
	return []PoolName{PoolLowercase, PoolUppercase, PoolDigits, PoolSymbols}
}

// Valid reports whether the pool name is one of the supported pools.
func (p PoolName) Valid() bool {
	switch p {
	case PoolLowercase, PoolUppercase, PoolDigits, PoolSymbols:
		return true
	default:
		return false
	}
}

// Symbols returns the character set for the pool. Unknown pools return an
// empty string.
func (p PoolName) Symbols() string {
	switch p {
	case PoolLowercase:
		return lowercaseChars
	case PoolUppercase:
		return uppercaseChars
	case PoolDigits:
		return digitChars
	case PoolSymbols:
		return symbolChars
	default:
		return ""
	}
}

// Contains reports whether the rune belongs to the pool.
func (p PoolName) Contains(r rune) bool {
	return strings.ContainsRune(p.Symbols(), r)
}

// FilterSymbols returns the pool's character set with every rune present in
// exclude removed.
func (p PoolName) FilterSymbols(exclude string) string {
	if exclude == "" {
		return p.Symbols()
	}

	var b strings.Builder
	for _, r := range p.Symbols() {
		if !strings.ContainsRune(exclude, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePool converts a pool name string to a PoolName.
// Returns ErrUnknownPool if the name is not a supported pool.
func ParsePool(name string) (PoolName, error) {
	pool := PoolName(strings.ToLower(strings.TrimSpace(name)))
	if !pool.Valid() {
		return "", ErrUnknownPool
	}
	return pool, nil
}

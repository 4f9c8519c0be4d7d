package dto

import (
	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
)

// PasscodeResponse represents a generated passcode in API responses.
type PasscodeResponse struct {
	Passcode       string   `json:"passcode"`
	Length         int      `json:"length"`
	Pools          []string `json:"pools"`
	EntropyBits    float64  `json:"entropy_bits"`
	HashedPasscode string   `json:"hashed_passcode,omitempty"`
}

// MapPasscodeToResponse converts a domain passcode to an API response.
func MapPasscodeToResponse(passcode *generatorDomain.Passcode) PasscodeResponse {
	pools := make([]string, 0, len(passcode.Pools))
	for _, pool := range passcode.Pools {
		pools = append(pools, string(pool))
	}

	return PasscodeResponse{
		Passcode:       passcode.Value,
		Length:         passcode.Length,
		Pools:          pools,
		EntropyBits:    passcode.EntropyBits,
		HashedPasscode: passcode.HashedValue,
	}
}

// PassphraseResponse represents a generated passphrase in API responses.
type PassphraseResponse struct {
	Passphrase  string  `json:"passphrase"`
	Words       int     `json:"words"`
	Wordlist    string  `json:"wordlist"`
	EntropyBits float64 `json:"entropy_bits"`
}

// MapPassphraseToResponse converts a domain passphrase to an API response.
func MapPassphraseToResponse(passphrase *generatorDomain.Passphrase) PassphraseResponse {
	return PassphraseResponse{
		Passphrase:  passphrase.Value,
		Words:       passphrase.Words,
		Wordlist:    passphrase.Wordlist,
		EntropyBits: passphrase.EntropyBits,
	}
}

// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	customValidation "github.com/allisson/passgen/internal/validation"
)

// GeneratePasscodeRequest contains the parameters for passcode generation.
type GeneratePasscodeRequest struct {
	// Length is the exact number of characters in the result.
	Length int `json:"length"`
	// Pools selects the character classes: lowercase, uppercase, digits, symbols.
	Pools []string `json:"pools"`
	// MinPerPool overrides the minimum inclusion constraint (default 1).
	MinPerPool int `json:"min_per_pool"`
	// Exclude lists characters that must not appear in the result.
	Exclude string `json:"exclude"`
	// Hash additionally returns an Argon2id hash of the generated passcode.
	Hash bool `json:"hash"`
}

// Validate checks if the passcode generation request is valid.
func (r *GeneratePasscodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length,
			validation.Required,
			validation.Min(1),
			validation.Max(generatorDomain.MaxLength),
		),
		validation.Field(&r.Pools,
			validation.Required,
			customValidation.PoolNames{},
		),
		validation.Field(&r.MinPerPool,
			validation.Min(0),
			validation.Max(generatorDomain.MaxLength),
		),
		validation.Field(&r.Exclude,
			customValidation.PrintableASCII{},
		),
	)
}

// ToDomain converts the request to a domain PasscodeRequest.
func (r *GeneratePasscodeRequest) ToDomain() (*generatorDomain.PasscodeRequest, error) {
	pools := make([]generatorDomain.PoolName, 0, len(r.Pools))
	for _, name := range r.Pools {
		pool, err := generatorDomain.ParsePool(name)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}

	return &generatorDomain.PasscodeRequest{
		Length:     r.Length,
		Pools:      pools,
		MinPerPool: r.MinPerPool,
		Exclude:    r.Exclude,
		Hash:       r.Hash,
	}, nil
}

// GeneratePassphraseRequest contains the parameters for passphrase generation.
type GeneratePassphraseRequest struct {
	// Words is the number of words drawn from the wordlist.
	Words int `json:"words"`
	// Wordlist names the compiled-in wordlist; empty means "default".
	Wordlist string `json:"wordlist"`
	// Separator is placed between words.
	Separator string `json:"separator"`
	// Plus appends one random symbol, digit, and uppercase letter.
	Plus bool `json:"plus"`
	// Exclude lists characters that must not appear in the result.
	Exclude string `json:"exclude"`
}

// Validate checks if the passphrase generation request is valid.
func (r *GeneratePassphraseRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Words,
			validation.Required,
			validation.Min(1),
			validation.Max(generatorDomain.MaxWords),
		),
		validation.Field(&r.Separator,
			customValidation.PrintableASCII{},
		),
		validation.Field(&r.Exclude,
			customValidation.PrintableASCII{},
		),
	)
}

// ToDomain converts the request to a domain PassphraseRequest, applying the
// default wordlist when unset.
func (r *GeneratePassphraseRequest) ToDomain(defaultWordlist string) *generatorDomain.PassphraseRequest {
	name := r.Wordlist
	if name == "" {
		name = defaultWordlist
	}

	return &generatorDomain.PassphraseRequest{
		Words:     r.Words,
		Wordlist:  name,
		Separator: r.Separator,
		Plus:      r.Plus,
		Exclude:   r.Exclude,
	}
}

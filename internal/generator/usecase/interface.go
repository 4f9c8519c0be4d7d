// Package usecase defines the interfaces and implementations for pass-string
// generation use cases. Use cases orchestrate the random composition service,
// the compiled-in wordlists, and the hasher to implement constrained generation.
package usecase

import (
	"context"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
)

// WordlistSource provides access to the compiled-in word pools.
type WordlistSource interface {
	// List returns the named wordlist; the second value is false when the
	// name is unknown.
	List(name string) ([]string, bool)
	// Names returns the available wordlist names.
	Names() []string
}

// GeneratorUseCase defines the interface for pass-string generation logic.
type GeneratorUseCase interface {
	// GeneratePasscode produces a random string of exactly the requested
	// length containing at least the minimum number of characters from each
	// selected pool.
	GeneratePasscode(
		ctx context.Context,
		req *generatorDomain.PasscodeRequest,
	) (*generatorDomain.Passcode, error)

	// GeneratePassphrase produces a passphrase drawn from a compiled-in
	// wordlist, optionally suffixed with one symbol, digit, and uppercase
	// letter.
	GeneratePassphrase(
		ctx context.Context,
		req *generatorDomain.PassphraseRequest,
	) (*generatorDomain.Passphrase, error)
}

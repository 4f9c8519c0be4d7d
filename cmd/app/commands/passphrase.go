package commands

import (
	"context"
	"fmt"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
)

// PassphraseParams holds the parsed CLI options for passphrase generation.
type PassphraseParams struct {
	Words     int
	Wordlist  string
	Separator string
	Plus      bool
	Exclude   string
	Format    string
}

// RunGeneratePassphrase generates a passphrase from a compiled-in wordlist and
// writes it to the command writer in text or json format.
func RunGeneratePassphrase(
	ctx context.Context,
	useCase generatorUseCase.GeneratorUseCase,
	io IOTuple,
	params PassphraseParams,
) error {
	if err := validateFormat(params.Format); err != nil {
		return err
	}

	passphrase, err := useCase.GeneratePassphrase(ctx, &generatorDomain.PassphraseRequest{
		Words:     params.Words,
		Wordlist:  params.Wordlist,
		Separator: params.Separator,
		Plus:      params.Plus,
		Exclude:   params.Exclude,
	})
	if err != nil {
		return fmt.Errorf("failed to generate passphrase: %w", err)
	}

	if params.Format == "json" {
		return printJSON(io.Writer, map[string]any{
			"passphrase":   passphrase.Value,
			"words":        passphrase.Words,
			"wordlist":     passphrase.Wordlist,
			"entropy_bits": passphrase.EntropyBits,
		})
	}

	fmt.Fprintln(io.Writer, passphrase.Value)
	fmt.Fprintf(io.Writer, "entropy: %.1f bits\n", passphrase.EntropyBits)

	return nil
}

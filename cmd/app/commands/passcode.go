package commands

import (
	"context"
	"fmt"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	generatorUseCase "github.com/allisson/passgen/internal/generator/usecase"
)

// PasscodeParams holds the parsed CLI options for passcode generation.
type PasscodeParams struct {
	Length     int
	Pools      []string
	MinPerPool int
	Exclude    string
	Hash       bool
	Format     string
}

// RunGeneratePasscode generates a constrained random passcode and writes it to
// the command writer in text or json format.
func RunGeneratePasscode(
	ctx context.Context,
	useCase generatorUseCase.GeneratorUseCase,
	io IOTuple,
	params PasscodeParams,
) error {
	if err := validateFormat(params.Format); err != nil {
		return err
	}

	pools, err := parsePools(params.Pools)
	if err != nil {
		return err
	}

	passcode, err := useCase.GeneratePasscode(ctx, &generatorDomain.PasscodeRequest{
		Length:     params.Length,
		Pools:      pools,
		MinPerPool: params.MinPerPool,
		Exclude:    params.Exclude,
		Hash:       params.Hash,
	})
	if err != nil {
		return fmt.Errorf("failed to generate passcode: %w", err)
	}

	if params.Format == "json" {
		output := map[string]any{
			"passcode":     passcode.Value,
			"length":       passcode.Length,
			"entropy_bits": passcode.EntropyBits,
		}
		if passcode.HashedValue != "" {
			output["hashed_passcode"] = passcode.HashedValue
		}
		return printJSON(io.Writer, output)
	}

	fmt.Fprintln(io.Writer, passcode.Value)
	fmt.Fprintf(io.Writer, "entropy: %.1f bits\n", passcode.EntropyBits)
	if passcode.HashedValue != "" {
		fmt.Fprintf(io.Writer, "argon2id: %s\n", passcode.HashedValue)
	}

	return nil
}

// parsePools converts pool name strings to domain pool names.
// Returns an error naming the valid options when a name is unknown.
func parsePools(names []string) ([]generatorDomain.PoolName, error) {
	pools := make([]generatorDomain.PoolName, 0, len(names))
	for _, name := range names {
		pool, err := generatorDomain.ParsePool(name)
		if err != nil {
			return nil, fmt.Errorf(
				"invalid pool: %s (valid options: lowercase, uppercase, digits, symbols)",
				name,
			)
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

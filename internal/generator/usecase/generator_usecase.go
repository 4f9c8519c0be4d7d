package usecase

import (
	"context"
	"math"
	"strings"

	apperrors "github.com/allisson/passgen/internal/errors"
	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
	generatorService "github.com/allisson/passgen/internal/generator/service"
)

// generatorUseCase implements the GeneratorUseCase interface.
type generatorUseCase struct {
	composer  *generatorService.Composer
	hasher    generatorService.Hasher
	wordlists WordlistSource
}

// NewGeneratorUseCase creates a generator use case with its dependencies.
func NewGeneratorUseCase(
	composer *generatorService.Composer,
	hasher generatorService.Hasher,
	wordlists WordlistSource,
) GeneratorUseCase {
	return &generatorUseCase{
		composer:  composer,
		hasher:    hasher,
		wordlists: wordlists,
	}
}

// GeneratePasscode produces a constrained random passcode.
func (g *generatorUseCase) GeneratePasscode(
	ctx context.Context,
	req *generatorDomain.PasscodeRequest,
) (*generatorDomain.Passcode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Resolve each pool to its character set with exclusions applied.
	charsets := make([]string, len(req.Pools))
	for i, pool := range req.Pools {
		charsets[i] = pool.FilterSymbols(req.Exclude)
		if charsets[i] == "" {
			return nil, apperrors.Wrapf(
				generatorDomain.ErrEmptyPool,
				"pool %q has no symbols left after exclusions",
				pool,
			)
		}
	}

	value, err := g.composer.Compose(charsets, req.Length, req.EffectiveMinPerPool())
	if err != nil {
		return nil, err
	}

	passcode := &generatorDomain.Passcode{
		Value:       value,
		Length:      req.Length,
		Pools:       req.Pools,
		EntropyBits: entropyBits(req.Length, generatorService.UnionSize(charsets)),
	}

	if req.Hash {
		hashed, err := g.hasher.Hash(value)
		if err != nil {
			return nil, err
		}
		passcode.HashedValue = hashed
	}

	return passcode, nil
}

// GeneratePassphrase produces a passphrase from a compiled-in wordlist.
func (g *generatorUseCase) GeneratePassphrase(
	ctx context.Context,
	req *generatorDomain.PassphraseRequest,
) (*generatorDomain.Passphrase, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	words, ok := g.wordlists.List(req.Wordlist)
	if !ok {
		return nil, apperrors.Wrapf(
			generatorDomain.ErrWordlistNotFound,
			"wordlist %q (available: %s)",
			req.Wordlist,
			strings.Join(g.wordlists.Names(), ", "),
		)
	}

	// Drop words containing excluded characters.
	words = generatorService.FilterWords(words, req.Exclude)
	if len(words) == 0 {
		return nil, apperrors.Wrapf(
			generatorDomain.ErrEmptyPool,
			"wordlist %q has no words left after exclusions",
			req.Wordlist,
		)
	}

	picked, err := g.composer.PickWords(words, req.Words)
	if err != nil {
		return nil, err
	}

	value := strings.Join(picked, req.Separator)
	entropy := entropyBits(req.Words, len(words))

	if req.Plus {
		suffix, suffixEntropy, err := g.plusSuffix(req.Exclude)
		if err != nil {
			return nil, err
		}
		value += suffix
		entropy += suffixEntropy
	}

	return &generatorDomain.Passphrase{
		Value:       value,
		Words:       req.Words,
		Wordlist:    req.Wordlist,
		EntropyBits: entropy,
	}, nil
}

// plusSuffix draws one symbol, one digit, and one uppercase letter, the classic
// trick for passphrases that must satisfy mixed character class rules.
func (g *generatorUseCase) plusSuffix(exclude string) (string, float64, error) {
	var suffix strings.Builder
	var entropy float64

	for _, pool := range []generatorDomain.PoolName{
		generatorDomain.PoolSymbols,
		generatorDomain.PoolDigits,
		generatorDomain.PoolUppercase,
	} {
		charset := pool.FilterSymbols(exclude)
		picked, err := g.composer.Pick(charset)
		if err != nil {
			return "", 0, apperrors.Wrapf(
				generatorDomain.ErrEmptyPool,
				"pool %q has no symbols left after exclusions",
				pool,
			)
		}
		suffix.WriteString(picked)
		entropy += entropyBits(1, len([]rune(charset)))
	}

	return suffix.String(), entropy, nil
}

// entropyBits computes H = L * log2(N) for L independent uniform draws from a
// pool of N elements.
func entropyBits(draws, poolSize int) float64 {
	if draws <= 0 || poolSize <= 0 {
		return 0
	}
	return float64(draws) * math.Log2(float64(poolSize))
}

package service

import (
	"strings"

	generatorDomain "github.com/allisson/passgen/internal/generator/domain"
)

// Composer builds constrained random pass-strings from resolved character sets.
type Composer struct {
	source RandomSource
}

// NewComposer creates a composer backed by the given random source.
func NewComposer(source RandomSource) *Composer {
	return &Composer{source: source}
}

// Compose produces a string of exactly length characters where each charset
// contributes at least minPerPool characters.
//
// The algorithm draws minPerPool characters per charset, fills the remainder
// from the flattened union of all charsets (larger sets are proportionally
// more likely), and applies a uniform permutation so the required characters
// are not clustered at the front.
//
// Charsets must already have exclusions applied; an empty charset fails with
// ErrEmptyPool. The caller is responsible for ensuring
// length >= len(charsets) * minPerPool.
func (c *Composer) Compose(charsets []string, length, minPerPool int) (string, error) {
	if len(charsets) == 0 {
		return "", generatorDomain.ErrNoPoolSelected
	}

	var union []rune
	for _, charset := range charsets {
		if charset == "" {
			return "", generatorDomain.ErrEmptyPool
		}
		union = append(union, []rune(charset)...)
	}

	result := make([]rune, 0, length)

	// Required draws: minPerPool characters per charset.
	for _, charset := range charsets {
		runes := []rune(charset)
		for i := 0; i < minPerPool; i++ {
			result = append(result, runes[c.source.IntN(len(runes))])
		}
	}

	// Fill the remainder from the union.
	for len(result) < length {
		result = append(result, union[c.source.IntN(len(union))])
	}

	c.source.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	return string(result), nil
}

// PickWords draws count words independently and uniformly from the pool.
// Returns ErrEmptyPool when the pool has no words.
func (c *Composer) PickWords(words []string, count int) ([]string, error) {
	if len(words) == 0 {
		return nil, generatorDomain.ErrEmptyPool
	}

	picked := make([]string, count)
	for i := range picked {
		picked[i] = words[c.source.IntN(len(words))]
	}
	return picked, nil
}

// Pick draws a single character uniformly from the charset.
// Returns ErrEmptyPool when the charset is empty.
func (c *Composer) Pick(charset string) (string, error) {
	runes := []rune(charset)
	if len(runes) == 0 {
		return "", generatorDomain.ErrEmptyPool
	}
	return string(runes[c.source.IntN(len(runes))]), nil
}

// UnionSize returns the number of distinct draw positions across the charsets.
// Used for entropy computation over the flattened union.
func UnionSize(charsets []string) int {
	total := 0
	for _, charset := range charsets {
		total += len([]rune(charset))
	}
	return total
}

// FilterWords removes words containing any excluded character.
func FilterWords(words []string, exclude string) []string {
	if exclude == "" {
		return words
	}

	filtered := make([]string, 0, len(words))
	for _, word := range words {
		if !strings.ContainsAny(word, exclude) {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

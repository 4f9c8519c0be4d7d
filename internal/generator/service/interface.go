// Package service provides the random composition primitives behind pass-string
// generation: a uniform pseudo-random source, the constrained composer, and an
// Argon2id hasher for generated credentials.
package service

// RandomSource is a statistically uniform pseudo-random generator. The default
// implementation is seeded from system entropy at construction; implementations
// used by a single caller need no locking, sharing one across goroutines
// requires a thread-safe implementation such as the one NewRandomSource returns.
type RandomSource interface {
	// IntN returns a uniform random int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Shuffle applies a uniform random permutation over n elements.
	Shuffle(n int, swap func(i, j int))
}

// Hasher hashes generated pass-strings for callers that store only digests.
type Hasher interface {
	Hash(plain string) (string, error)
}

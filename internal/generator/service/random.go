package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// lockedSource wraps a math/rand/v2 PCG generator with a mutex so a single
// instance can be shared across concurrent HTTP handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a uniform pseudo-random source seeded from system
// entropy. The generator is statistical, not cryptographic; each process gets
// an independent seed so repeated runs produce different outputs.
func NewRandomSource() RandomSource {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read only fails when the OS entropy source is broken
		panic(err)
	}

	rng := rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[0:8]),
		binary.LittleEndian.Uint64(seed[8:16]),
	))

	return &lockedSource{rng: rng}
}

// IntN returns a uniform random int in [0, n).
func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Shuffle applies a Fisher-Yates shuffle over n elements.
func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

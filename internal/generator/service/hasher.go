package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/passgen/internal/errors"
)

// argon2Hasher implements Hasher using Argon2id.
type argon2Hasher struct {
	hasher *pwdhash.PasswordHasher
}

// NewHasher creates a Hasher using Argon2id with the interactive policy,
// which fits the latency budget of CLI and API callers.
func NewHasher() Hasher {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	return &argon2Hasher{hasher: hasher}
}

// Hash hashes a generated pass-string using Argon2id.
func (a *argon2Hasher) Hash(plain string) (string, error) {
	hashed, err := a.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash pass-string")
	}
	return hashed, nil
}

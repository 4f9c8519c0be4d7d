package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

// Generation-specific error definitions.
var (
	// ErrInvalidLength indicates the requested length cannot satisfy the
	// minimum per-pool inclusion constraint.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid length")

	// ErrNoPoolSelected indicates no character pools or wordlist were chosen.
	ErrNoPoolSelected = errors.Wrap(errors.ErrInvalidInput, "no pool selected")

	// ErrEmptyPool indicates a selected pool resolved to zero symbols,
	// typically after character exclusions were applied.
	ErrEmptyPool = errors.Wrap(errors.ErrInvalidInput, "empty pool")

	// ErrUnknownPool indicates a pool name is not one of the supported pools.
	ErrUnknownPool = errors.Wrap(errors.ErrInvalidInput, "unknown pool")

	// ErrWordlistNotFound indicates the named wordlist does not exist.
	ErrWordlistNotFound = errors.Wrap(errors.ErrNotFound, "wordlist not found")
)

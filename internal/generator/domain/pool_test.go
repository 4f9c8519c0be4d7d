package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolName_Valid(t *testing.T) {
	t.Run("Success_SupportedPools", func(t *testing.T) {
		for _, pool := range AllPools() {
			assert.True(t, pool.Valid(), "pool %q should be valid", pool)
		}
	})

	t.Run("Error_UnknownPool", func(t *testing.T) {
		assert.False(t, PoolName("hex").Valid())
		assert.False(t, PoolName("").Valid())
		assert.False(t, PoolName("Lowercase").Valid())
	})
}

func TestPoolName_Symbols(t *testing.T) {
	t.Run("Success_KnownPools", func(t *testing.T) {
		assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", PoolLowercase.Symbols())
		assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", PoolUppercase.Symbols())
		assert.Equal(t, "0123456789", PoolDigits.Symbols())
		assert.Equal(t, "~!@#$%^&*_-+=", PoolSymbols.Symbols())
	})

	t.Run("Success_DisjointPools", func(t *testing.T) {
		seen := make(map[rune]PoolName)
		for _, pool := range AllPools() {
			for _, r := range pool.Symbols() {
				other, dup := seen[r]
				assert.False(t, dup, "rune %q appears in both %q and %q", r, other, pool)
				seen[r] = pool
			}
		}
	})

	t.Run("Success_UnknownPoolIsEmpty", func(t *testing.T) {
		assert.Empty(t, PoolName("hex").Symbols())
	})
}

func TestPoolName_Contains(t *testing.T) {
	assert.True(t, PoolLowercase.Contains('a'))
	assert.False(t, PoolLowercase.Contains('A'))
	assert.True(t, PoolDigits.Contains('0'))
	assert.True(t, PoolSymbols.Contains('~'))
	assert.False(t, PoolSymbols.Contains(' '))
}

func TestPoolName_FilterSymbols(t *testing.T) {
	t.Run("Success_NoExclusions", func(t *testing.T) {
		assert.Equal(t, PoolDigits.Symbols(), PoolDigits.FilterSymbols(""))
	})

	t.Run("Success_RemovesExcluded", func(t *testing.T) {
		assert.Equal(t, "123456789", PoolDigits.FilterSymbols("0"))
		assert.Equal(t, "2345678", PoolDigits.FilterSymbols("019"))
	})

	t.Run("Success_ExclusionsFromOtherPoolsIgnored", func(t *testing.T) {
		assert.Equal(t, PoolDigits.Symbols(), PoolDigits.FilterSymbols("abcXYZ~"))
	})

	t.Run("Success_AllExcludedYieldsEmpty", func(t *testing.T) {
		assert.Empty(t, PoolDigits.FilterSymbols("0123456789"))
	})
}

func TestParsePool(t *testing.T) {
	t.Run("Success_ExactName", func(t *testing.T) {
		pool, err := ParsePool("digits")
		assert.NoError(t, err)
		assert.Equal(t, PoolDigits, pool)
	})

	t.Run("Success_NormalizesCaseAndSpace", func(t *testing.T) {
		pool, err := ParsePool("  Lowercase ")
		assert.NoError(t, err)
		assert.Equal(t, PoolLowercase, pool)
	})

	t.Run("Error_UnknownName", func(t *testing.T) {
		_, err := ParsePool("hex")
		assert.ErrorIs(t, err, ErrUnknownPool)
	})
}

package domain

// DefaultMinPerPool is the minimum inclusion constraint applied when a request
// does not set one explicitly.
const DefaultMinPerPool = 1

// MaxLength bounds requested pass-string lengths to keep responses small.
const MaxLength = 255

// PasscodeRequest contains the parameters for constrained random passcode
// generation. A request is built per invocation and consumed once.
type PasscodeRequest struct {
	// Length is the exact number of characters in the result.
	Length int
	// Pools are the selected character pools; each must contribute at least
	// MinPerPool characters to the result.
	Pools []PoolName
	// MinPerPool is the minimum inclusion constraint per selected pool.
	// Zero means DefaultMinPerPool.
	MinPerPool int
	// Exclude lists characters that must not appear in the result.
	Exclude string
	// Hash requests an Argon2id hash of the generated passcode alongside it.
	Hash bool
}

// EffectiveMinPerPool returns the minimum inclusion constraint, applying the
// default when unset.
func (r *PasscodeRequest) EffectiveMinPerPool() int {
	if r.MinPerPool <= 0 {
		return DefaultMinPerPool
	}
	return r.MinPerPool
}

// Validate checks the request invariants: at least one pool is selected, every
// pool name is known and appears once, and the target length can satisfy the
// minimum inclusion constraint.
func (r *PasscodeRequest) Validate() error {
	if len(r.Pools) == 0 {
		return ErrNoPoolSelected
	}

	seen := make(map[PoolName]bool, len(r.Pools))
	for _, pool := range r.Pools {
		if !pool.Valid() {
			return ErrUnknownPool
		}
		if seen[pool] {
			return ErrUnknownPool
		}
		seen[pool] = true
	}

	if r.Length < 1 || r.Length > MaxLength {
		return ErrInvalidLength
	}
	if r.Length < len(r.Pools)*r.EffectiveMinPerPool() {
		return ErrInvalidLength
	}

	return nil
}

// Passcode is the result of a constrained random generation.
type Passcode struct {
	// Value is the generated pass-string, exactly Length characters long.
	Value string
	// Length is the requested target length.
	Length int
	// Pools are the pools that contributed to the result.
	Pools []PoolName
	// EntropyBits is H = L * log2(N) over the effective character union.
	EntropyBits float64
	// HashedValue is the Argon2id hash of Value when hashing was requested.
	HashedValue string
}

// PassphraseRequest contains the parameters for wordlist-mode generation,
// where the pool consists of whole words rather than single characters.
type PassphraseRequest struct {
	// Words is the number of words drawn from the wordlist.
	Words int
	// Wordlist names the compiled-in wordlist to draw from.
	Wordlist string
	// Separator is placed between words; empty matches the classic behavior
	// of concatenating words directly.
	Separator string
	// Plus appends one random symbol, digit, and uppercase letter after the
	// words for sites that demand mixed character classes.
	Plus bool
	// Exclude lists characters that must not appear in the result; words
	// containing an excluded character are dropped from the pool.
	Exclude string
}

// MaxWords bounds passphrase word counts.
const MaxWords = 64

// Validate checks the passphrase request invariants.
func (r *PassphraseRequest) Validate() error {
	if r.Wordlist == "" {
		return ErrNoPoolSelected
	}
	if r.Words < 1 || r.Words > MaxWords {
		return ErrInvalidLength
	}
	return nil
}

// Passphrase is the result of a wordlist-mode generation.
type Passphrase struct {
	// Value is the generated passphrase.
	Value string
	// Words is the number of words drawn.
	Words int
	// Wordlist is the name of the wordlist used.
	Wordlist string
	// EntropyBits is H = W * log2(N) over the effective wordlist size, plus
	// the contribution of the Plus suffix when present.
	EntropyBits float64
}

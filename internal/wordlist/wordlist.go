// Package wordlist provides the compiled-in word pools used for wordlist-mode
// generation. Lists are immutable; callers receive defensive copies.
package wordlist

import "sync"

// Wordlist names.
const (
	// NameDefault is the full compiled-in list.
	NameDefault = "default"
	// NameShort is the default list restricted to words of at most
	// shortWordMaxLen letters, for passphrases that must stay typeable.
	NameShort = "short"
)

// shortWordMaxLen is the maximum word length admitted to the short list.
const shortWordMaxLen = 6

var (
	shortOnce  sync.Once
	shortWords []string
)

// Names returns the available wordlist names in a stable order.
func Names() []string {
	return []string{NameDefault, NameShort}
}

// List returns a copy of the named wordlist. The second return value is false
// when the name is unknown.
func List(name string) ([]string, bool) {
	switch name {
	case NameDefault:
		return copyWords(words), true
	case NameShort:
		shortOnce.Do(func() {
			for _, w := range words {
				if len(w) <= shortWordMaxLen {
					shortWords = append(shortWords, w)
				}
			}
		})
		return copyWords(shortWords), true
	default:
		return nil, false
	}
}

// Source adapts the package-level wordlists to consumers that depend on an
// injected provider.
type Source struct{}

// NewSource creates a Source over the compiled-in wordlists.
func NewSource() Source {
	return Source{}
}

// List returns a copy of the named wordlist.
func (Source) List(name string) ([]string, bool) {
	return List(name)
}

// Names returns the available wordlist names.
func (Source) Names() []string {
	return Names()
}

func copyWords(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

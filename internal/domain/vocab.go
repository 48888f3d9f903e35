package domain

import "strings"

// MaxMatches caps autocomplete responses, mirroring the Discord choice limit.
const MaxMatches = 25

// Vocabulary is a fixed, ordered list of allowed labels. It is configuration
// data supplied at startup and never mutated afterwards.
type Vocabulary []string

// Contains reports whether label is exactly one of the vocabulary entries.
func (v Vocabulary) Contains(label string) bool {
	for _, entry := range v {
		if entry == label {
			return true
		}
	}
	return false
}

// Match returns up to MaxMatches entries containing partial
// case-insensitively, preserving vocabulary order. An empty partial matches
// everything. The substring must start at a word boundary: searching "ore"
// lists the Ore tiers without bleeding into "Power Core".
func (v Vocabulary) Match(partial string) []string {
	needle := strings.ToLower(partial)
	matches := make([]string, 0, MaxMatches)
	for _, entry := range v {
		if !matchesWordStart(strings.ToLower(entry), needle) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == MaxMatches {
			break
		}
	}
	return matches
}

func matchesWordStart(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if i > 0 && isWordByte(haystack[i-1]) {
			continue
		}
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

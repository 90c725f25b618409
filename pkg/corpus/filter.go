package corpus

import (
	"strings"
	"unicode"
)

// FilterSentences applies the quality gate to candidate sentences and
// returns the survivors in order.
func (p *Processor) FilterSentences(sentences []string) []string {
	var kept []string
	for _, s := range sentences {
		if p.keepSentence(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// keepSentence rejects sentences outside the configured length range, with
// too many non-letter characters, that look like headings (long and fully
// uppercase), or with heavy word repetition (corrupted or boilerplate text).
// Lengths are measured in runes; Latin-1 fallback decoding means multi-byte
// characters are common.
func (p *Processor) keepSentence(s string) bool {
	var length, noise int
	for _, r := range s {
		length++
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			noise++
		}
	}
	if length < p.minSentenceLen || length > p.maxSentenceLen {
		return false
	}

	if float64(noise) > float64(length)*0.3 {
		return false
	}

	if length > 20 && isUpperString(s) {
		return false
	}

	words := strings.Fields(strings.ToLower(s))
	if len(words) > 5 {
		distinct := make(map[string]struct{}, len(words))
		for _, w := range words {
			distinct[w] = struct{}{}
		}
		if float64(len(distinct)) < float64(len(words))*0.6 {
			return false
		}
	}

	return true
}

// isUpperString reports whether s contains at least one letter and no
// lowercase letters.
func isUpperString(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

package corpus

import (
	"regexp"
	"strings"
)

// Temporary markers standing in for periods that must not split a sentence.
// NUL-prefixed so normalized text can never contain them.
const (
	abbrevMark  = "\x00a"
	decimalMark = "\x00d"
)

var (
	// A capitalized token of one to four letters followed by a period is
	// treated as an abbreviation ("Dr.", "Mrs.", "J."), not a boundary.
	abbrevPattern  = regexp.MustCompile(`\b([A-Z][a-z]{0,3})\.`)
	decimalPattern = regexp.MustCompile(`(\d+)\.(\d+)`)
	// A boundary is terminal punctuation followed by whitespace and a
	// capital letter. End of string needs no marker.
	boundaryPattern = regexp.MustCompile(`([.!?]+)\s+([A-Z])`)
)

const boundaryMark = "\x00|"

// SplitSentences segments normalized text into candidate sentences. The
// terminal punctuation stays attached to its sentence. Abbreviations and
// decimal numbers are protected from being read as boundaries.
func SplitSentences(text string) []string {
	protected := abbrevPattern.ReplaceAllString(text, "${1}"+abbrevMark)
	protected = decimalPattern.ReplaceAllString(protected, "${1}"+decimalMark+"${2}")

	marked := boundaryPattern.ReplaceAllString(protected, "${1}"+boundaryMark+"${2}")

	var sentences []string
	for _, fragment := range strings.Split(marked, boundaryMark) {
		fragment = strings.ReplaceAll(fragment, abbrevMark, ".")
		fragment = strings.ReplaceAll(fragment, decimalMark, ".")
		if fragment = strings.TrimSpace(fragment); fragment != "" {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

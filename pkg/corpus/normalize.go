package corpus

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Everything outside word characters, whitespace and basic punctuation
	// is replaced by a space.
	disallowedChars  = regexp.MustCompile(`[^\w\s.!?;:,'"()-]`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.!?;:,])`)
	missingGap       = regexp.MustCompile(`([.!?])\s*([A-Z])`)
	ellipsisRun      = regexp.MustCompile(`\.{3,}`)
	exclaimRun       = regexp.MustCompile(`!{2,}`)
	questionRun      = regexp.MustCompile(`\?{2,}`)
)

// Normalize cleans raw book content: whitespace runs collapse to a single
// space, characters outside the retained set are dropped, spacing around
// punctuation is repaired, and runs of terminal punctuation collapse
// (three-plus periods become an ellipsis, doubled ! and ? a single mark).
func Normalize(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")

	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = missingGap.ReplaceAllString(text, "$1 $2")

	text = ellipsisRun.ReplaceAllString(text, "...")
	text = exclaimRun.ReplaceAllString(text, "!")
	text = questionRun.ReplaceAllString(text, "?")

	return strings.TrimSpace(text)
}

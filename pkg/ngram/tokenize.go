package ngram

import (
	"regexp"
	"strings"
	"unicode"
)

// tokenRegex finds word character runs or single punctuation marks, mirroring
// the splitting done on training sentences and prompts alike.
var tokenRegex = regexp.MustCompile(`\w+|[.,!?;]`)

// firstWordRegex grabs the leading alphabetic run of a raw sentence, before
// any lower-casing, for sentence-starter detection.
var firstWordRegex = regexp.MustCompile(`[A-Za-z]+`)

// Tokenize splits text into model tokens: alphabetic runs of length greater
// than one, lower-cased, plus the sentence-terminal marks ".", "!" and "?" as
// standalone tokens. Everything else (digits, stray punctuation, single
// letters) is discarded. Prompts and training sentences must pass through the
// same tokenization for contexts to line up.
func Tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenRegex.FindAllString(text, -1) {
		switch {
		case isTerminal(tok):
			tokens = append(tokens, tok)
		case len(tok) > 1 && isAlpha(tok):
			tokens = append(tokens, strings.ToLower(tok))
		}
	}
	return tokens
}

// isTerminal reports whether a token is sentence-terminal punctuation.
func isTerminal(tok string) bool {
	return tok == "." || tok == "!" || tok == "?"
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

// titleCaseStarter returns the first word of a raw sentence when it is
// title-cased (leading capital, rest lower) and long enough to be a model
// token. The returned word keeps its original casing.
func titleCaseStarter(sentence string) (string, bool) {
	word := firstWordRegex.FindString(sentence)
	if len(word) < 2 {
		return "", false
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return "", false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return "", false
		}
	}
	return word, true
}

package assistant

import (
	"regexp"
	"strings"
)

// intent classifies a user message by keyword. kind selects the response
// handler; action refines it.
type intent struct {
	kind   intentKind
	action intentAction
}

type intentKind int

const (
	intentGeneral intentKind = iota
	intentWriting
	intentGeneration
	intentStyle
	intentSuggestions
	intentInfo
)

type intentAction int

const (
	actionNone intentAction = iota

	actionContinueText
	actionCharacterDevelopment
	actionPlotDevelopment
	actionDialogueWriting
	actionGeneralWriting

	actionStoryGeneration
	actionChapterGeneration
	actionParagraphGeneration
	actionTextGeneration

	actionCharacterSuggestions
	actionPlotSuggestions
	actionTitleSuggestions
	actionGeneralSuggestions
)

// classifyIntent buckets a message by the first keyword group it matches.
// Order matters: writing assistance wins over generation, generation over
// style, and so on, with general chat as the fallback.
func classifyIntent(input string) intent {
	lower := strings.ToLower(input)

	contains := func(phrases ...string) bool {
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("write", "continue", "complete"):
		in := intent{kind: intentWriting, action: actionGeneralWriting}
		switch {
		case contains("continue", "complete"):
			in.action = actionContinueText
		case contains("character"):
			in.action = actionCharacterDevelopment
		case contains("plot"):
			in.action = actionPlotDevelopment
		case contains("dialogue"):
			in.action = actionDialogueWriting
		}
		return in

	case contains("generate", "create", "start"):
		in := intent{kind: intentGeneration, action: actionTextGeneration}
		switch {
		case contains("story", "tale"):
			in.action = actionStoryGeneration
		case contains("chapter"):
			in.action = actionChapterGeneration
		case contains("paragraph"):
			in.action = actionParagraphGeneration
		}
		return in

	case contains("style", "genre", "similar to"):
		return intent{kind: intentStyle}

	case contains("suggest", "idea", "what should", "help with"):
		in := intent{kind: intentSuggestions, action: actionGeneralSuggestions}
		switch {
		case contains("character"):
			in.action = actionCharacterSuggestions
		case contains("plot"):
			in.action = actionPlotSuggestions
		case contains("title"):
			in.action = actionTitleSuggestions
		}
		return in

	case contains("status", "trained", "model", "info"):
		return intent{kind: intentInfo}
	}

	return intent{kind: intentGeneral}
}

var (
	doubleQuoted = regexp.MustCompile(`"([^"]+)"`)
	singleQuoted = regexp.MustCompile(`'([^']+)'`)

	continuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)continue this:?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?is)complete this:?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?is)finish this:?\s*(.+?)(?:\n|$)`),
	}
	promptPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)write about:?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?is)about:?\s*(.+?)(?:\n|$)`),
		regexp.MustCompile(`(?is)generate:?\s*(.+?)(?:\n|$)`),
	}
)

// extractContinuation pulls out the text a user wants continued: quoted
// text first, then "continue/complete/finish this:" tails.
func extractContinuation(input string) string {
	return extractWith(input, continuePatterns)
}

// extractPrompt pulls a writing prompt out of a message: quoted text
// first, then "write about:"/"about:"/"generate:" tails.
func extractPrompt(input string) string {
	return extractWith(input, promptPatterns)
}

func extractWith(input string, patterns []*regexp.Regexp) string {
	for _, re := range []*regexp.Regexp{doubleQuoted, singleQuoted} {
		if m := re.FindStringSubmatch(input); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, re := range patterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

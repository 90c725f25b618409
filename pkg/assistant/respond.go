package assistant

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// untrainedReply is returned for every chat message until a model has
// been trained or loaded.
const untrainedReply = "I haven't been trained on any books yet. Please provide " +
	".txt book files for me to learn from before I can assist with writing!"

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// respond builds the reply for a classified message. Callers hold the
// assistant lock.
func (a *Assistant) respond(input string, in intent) string {
	if !a.model.IsTrained() {
		return untrainedReply
	}

	switch in.kind {
	case intentWriting:
		return a.respondWriting(input, in)
	case intentGeneration:
		return a.respondGeneration(input, in)
	case intentStyle:
		return a.respondStyle()
	case intentSuggestions:
		return a.respondSuggestions(in)
	case intentInfo:
		return a.respondInfo()
	default:
		return a.respondGeneral(input)
	}
}

func (a *Assistant) respondWriting(input string, in intent) string {
	gen := func(prompt string, max int) string {
		return a.model.Generate(prompt, max, defaultTemperature)
	}

	switch in.action {
	case actionContinueText:
		if partial := extractContinuation(input); partial != "" {
			return "Here's a continuation:\n\n" + gen(partial, 50)
		}
		return "I'll help you start writing:\n\n" + gen("", 30)
	case actionCharacterDevelopment:
		return "Here's some character inspiration:\n\n" + gen("character", 40)
	case actionPlotDevelopment:
		return "Here's a plot idea:\n\n" + gen("story", 50)
	case actionDialogueWriting:
		return "Here's some dialogue inspiration:\n\n" + gen("said", 30)
	default:
		return "Here's some writing to inspire you:\n\n" + gen("", 40)
	}
}

func (a *Assistant) respondGeneration(input string, in intent) string {
	prompt := extractPrompt(input)
	gen := func(max int) string {
		return a.model.Generate(prompt, max, defaultTemperature)
	}

	switch in.action {
	case actionStoryGeneration:
		return "Here's a story beginning:\n\n" + gen(80)
	case actionChapterGeneration:
		return "Here's a chapter outline:\n\n" + gen(100)
	case actionParagraphGeneration:
		return "Here's a paragraph:\n\n" + gen(50)
	default:
		return "Here's some generated text:\n\n" + gen(60)
	}
}

func (a *Assistant) respondStyle() string {
	stats := a.model.Stats()
	if len(stats.MostCommonWords) == 0 {
		return "I can analyze writing style once I have more training data."
	}

	words := make([]string, 0, 5)
	for _, wc := range stats.MostCommonWords {
		words = append(words, wc.Word)
		if len(words) == 5 {
			break
		}
	}
	return fmt.Sprintf("Based on my training, I've learned from %d unique words. "+
		"The most common words in my training data are: %s. "+
		"This suggests the writing style tends to be descriptive and narrative.",
		stats.VocabularySize, strings.Join(words, ", "))
}

func (a *Assistant) respondSuggestions(in intent) string {
	suggestWords := func(context string) []string {
		suggestions := a.model.Suggest(context, 3)
		words := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			words = append(words, s.Token)
		}
		return words
	}

	switch in.action {
	case actionCharacterSuggestions:
		if words := suggestWords("character"); len(words) > 0 {
			return "Character ideas based on my training: " + strings.Join(words, ", ")
		}
		return "Create unique characters with distinct personalities, backgrounds, and motivations."
	case actionPlotSuggestions:
		if words := suggestWords("story"); len(words) > 0 {
			return "Plot ideas based on my training: " + strings.Join(words, ", ")
		}
		return "Consider conflicts, character growth, and unexpected twists in your plot."
	case actionTitleSuggestions:
		title := a.model.Generate("the", 5, defaultTemperature)
		return "Title suggestion: " + cases.Title(language.English).String(title)
	default:
		return "Writing suggestion based on my training:\n\n" +
			a.model.Generate("", 20, defaultTemperature)
	}
}

func (a *Assistant) respondInfo() string {
	stats := a.model.Stats()

	var b strings.Builder
	b.WriteString("Model Status:\n")
	fmt.Fprintf(&b, "- Trained: %s\n", yesNo(stats.IsTrained))
	fmt.Fprintf(&b, "- Vocabulary size: %d words\n", stats.VocabularySize)
	fmt.Fprintf(&b, "- N-gram size: %d\n", stats.NGramSize)
	fmt.Fprintf(&b, "- Total patterns learned: %d\n", stats.TotalContexts)

	if len(stats.MostCommonWords) > 0 {
		words := make([]string, 0, 5)
		for _, wc := range stats.MostCommonWords {
			words = append(words, wc.Word)
			if len(words) == 5 {
				break
			}
		}
		fmt.Fprintf(&b, "- Top words: %s", strings.Join(words, ", "))
	}
	return b.String()
}

// respondGeneral seeds generation with the first message word the model
// knows, falling back to an unseeded draw.
func (a *Assistant) respondGeneral(input string) string {
	for _, word := range wordPattern.FindAllString(strings.ToLower(input), -1) {
		if a.model.InVocabulary(word) {
			return "Based on your message, here's something from my training:\n\n" +
				a.model.Generate(word, 30, defaultTemperature)
		}
	}
	return "Here's something I learned from the books:\n\n" +
		a.model.Generate("", 30, defaultTemperature)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

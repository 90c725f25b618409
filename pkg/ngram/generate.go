package ngram

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// basicGrammar is the fixed grammar used for untrained generation. The model
// "knows only basic grammar until trained": it can open a sentence, pad it
// with function words and a content placeholder, and close it.
var basicGrammar = struct {
	starters    []string
	commonWords []string
	punctuation []string
}{
	starters:    []string{"The", "A", "An", "In", "On", "At", "Once", "When", "After", "Before"},
	commonWords: []string{"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by"},
	punctuation: []string{".", "!", "?"},
}

const (
	// placeholderWord stands in for real content in untrained output.
	placeholderWord = "[WORD]"
	// untrainedPrefix labels untrained output so it is never mistaken for a
	// generated continuation.
	untrainedPrefix = "Model not trained. Basic output: "
	// untrainedBudget caps how many filler tokens untrained output emits.
	untrainedBudget = 20
)

var spaceBeforeTerminal = regexp.MustCompile(`\s+([.!?])`)

// Generate produces text continuing the given prompt, emitting at most
// maxTokens new tokens or stopping early at sentence-terminal punctuation.
// Temperature controls sampling sharpness; zero or below selects the
// most probable token deterministically, ties broken by lexicographic token
// order. Generate always returns a string, even on an untrained model.
func (m *Model) Generate(prompt string, maxTokens int, temperature float64) string {
	if !m.trained {
		return m.generateBasic(prompt, maxTokens)
	}
	// Training can leave the vocabulary empty when every token fell below
	// the frequency gate. There is nothing to draw from, so the fixed
	// grammar applies just as it does before training.
	if len(m.vocabList) == 0 {
		return m.generateBasic(prompt, maxTokens)
	}

	generated := m.filterVocab(Tokenize(prompt))
	if len(generated) == 0 {
		generated = []string{m.seedToken()}
	}

	for i := 0; i < maxTokens; i++ {
		ctxLen := min(m.n-1, len(generated))
		dist, ok := m.resolve(generated[len(generated)-ctxLen:])

		var next string
		if !ok {
			// Full backoff exhausted: fall through to a uniform draw.
			next = m.vocabList[m.rng.IntN(len(m.vocabList))]
		} else {
			next = m.sample(dist, temperature)
		}

		generated = append(generated, next)
		if isTerminal(next) {
			break
		}
	}

	return formatOutput(generated)
}

// seedToken picks the opening token for prompt-less generation: a recorded
// sentence starter when any exist, otherwise a uniformly random vocabulary
// token. Starters are deduplicated and sorted so a seeded random source is
// reproducible.
func (m *Model) seedToken() string {
	if len(m.starters) == 0 {
		return m.vocabList[m.rng.IntN(len(m.vocabList))]
	}
	unique := make(map[string]struct{}, len(m.starters))
	for _, s := range m.starters {
		unique[strings.ToLower(s)] = struct{}{}
	}
	choices := make([]string, 0, len(unique))
	for s := range unique {
		choices = append(choices, s)
	}
	sort.Strings(choices)
	return choices[m.rng.IntN(len(choices))]
}

// resolve looks up the distribution for a context, backing off by dropping
// the oldest token until a match is found. It returns ok=false only when no
// nonempty suffix of the context has an entry.
func (m *Model) resolve(ctx []string) (map[string]float64, bool) {
	for len(ctx) > 0 {
		if dist, ok := m.table[contextKey(ctx)]; ok {
			return dist, true
		}
		ctx = ctx[1:]
	}
	return nil, false
}

// sample draws a token from a probability distribution with temperature
// scaling. Candidates are always visited in sorted token order so that equal
// seeds yield equal draws and temperature-zero ties resolve
// lexicographically.
func (m *Model) sample(dist map[string]float64, temperature float64) string {
	tokens := make([]string, 0, len(dist))
	for tok := range dist {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	if temperature <= 0 { // Deterministic arg-max
		best := tokens[0]
		for _, tok := range tokens[1:] {
			if dist[tok] > dist[best] {
				best = tok
			}
		}
		return best
	}

	weights := make([]float64, len(tokens))
	var total float64
	for i, tok := range tokens {
		w := dist[tok]
		if temperature != 1.0 {
			w = math.Pow(w, 1.0/temperature)
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return tokens[m.rng.IntN(len(tokens))]
	}

	// Cumulative-distribution draw.
	r := m.rng.Float64() * total
	for i, tok := range tokens {
		r -= weights[i]
		if r < 0 {
			return tok
		}
	}
	return tokens[len(tokens)-1]
}

// formatOutput joins generated tokens into readable text: first token
// capitalized, terminal punctuation attached to the preceding word,
// everything else space-separated.
func formatOutput(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(capitalize(tokens[0]))
	for _, tok := range tokens[1:] {
		if !isTerminal(tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return spaceBeforeTerminal.ReplaceAllString(b.String(), "$1")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// generateBasic assembles the untrained placeholder response from the fixed
// grammar: prompt words (or a grammar starter), filler interleaved with the
// content placeholder, and a closing punctuation mark.
func (m *Model) generateBasic(prompt string, maxTokens int) string {
	var words []string
	if prompt != "" {
		words = strings.Fields(prompt)
	} else {
		words = []string{basicGrammar.starters[m.rng.IntN(len(basicGrammar.starters))]}
	}

	for i := 0; i < min(maxTokens, untrainedBudget); i++ {
		if m.rng.Float64() < 0.3 {
			words = append(words, basicGrammar.commonWords[m.rng.IntN(len(basicGrammar.commonWords))])
		} else {
			words = append(words, placeholderWord)
		}
	}
	words = append(words, basicGrammar.punctuation[m.rng.IntN(len(basicGrammar.punctuation))])

	return untrainedPrefix + strings.Join(words, " ")
}

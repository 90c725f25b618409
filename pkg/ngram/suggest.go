package ngram

import "sort"

// Suggestion is a candidate next token with its conditional probability.
type Suggestion struct {
	Token       string  `json:"token"`
	Probability float64 `json:"probability"`
}

// untrainedSuggestions is the fixed stub returned before any training run.
var untrainedSuggestions = []Suggestion{
	{Token: "not", Probability: 0.2},
	{Token: "trained", Probability: 0.2},
	{Token: "yet", Probability: 0.2},
	{Token: "please", Probability: 0.2},
	{Token: "wait", Probability: 0.2},
}

// Suggest returns the top k next-token candidates for the given context
// text, sorted by descending probability with ties broken by ascending token
// order. The context is tokenized and vocabulary-filtered exactly like a
// generation prompt, and the same backoff rule applies. An untrained model
// returns a fixed stub list; a context with no observed continuation returns
// nil. Suggest never fails.
func (m *Model) Suggest(context string, k int) []Suggestion {
	if !m.trained {
		out := make([]Suggestion, len(untrainedSuggestions))
		copy(out, untrainedSuggestions)
		return out
	}

	words := m.filterVocab(Tokenize(context))
	ctxLen := min(m.n-1, len(words))
	dist, ok := m.resolve(words[len(words)-ctxLen:])
	if !ok {
		return nil
	}

	out := make([]Suggestion, 0, len(dist))
	for tok, p := range dist {
		out = append(out, Suggestion{Token: tok, Probability: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Probability != out[j].Probability {
			return out[i].Probability > out[j].Probability
		}
		return out[i].Token < out[j].Token
	})

	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

package ngram

import "testing"

// testSentences is a small corpus with enough repetition that every content
// word clears a min-count of 2.
var testSentences = []string{
	"The little boat drifted down the quiet river.",
	"The little boat carried two sleepy travelers.",
	"The quiet river wound past the old mill.",
	"Two sleepy travelers watched the old mill.",
}

// newTrainedModel builds a model trained on the shared test corpus. Extra
// options are applied after the defaults, so tests can override the seed or
// the window size.
func newTrainedModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	defaults := []Option{WithNGramSize(3), WithMinCount(1), WithSeed(7)}
	m := New(append(defaults, opts...)...)
	if err := m.Train(testSentences); err != nil {
		t.Fatalf("setup: Train() failed: %v", err)
	}
	return m
}

package ngram

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestTrainProbabilitySums(t *testing.T) {
	m := newTrainedModel(t)

	if len(m.table) == 0 {
		t.Fatal("expected a non-empty table after training")
	}
	for key, dist := range m.table {
		var sum float64
		for _, p := range dist {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("context %q: probabilities sum to %v, want 1.0", key, sum)
		}
	}
}

func TestTrainVocabularyThreshold(t *testing.T) {
	m := New(WithNGramSize(2), WithMinCount(2), WithSeed(1))
	sentences := []string{
		"the cat sat on the mat.",
		"the cat slept on the rug.",
	}
	if err := m.Train(sentences); err != nil {
		t.Fatalf("Train() failed: %v", err)
	}

	// "sat", "slept", "mat" and "rug" each appear once and must be gated out.
	for _, rare := range []string{"sat", "slept", "mat", "rug"} {
		if m.InVocabulary(rare) {
			t.Errorf("expected %q to be below the frequency threshold", rare)
		}
	}
	if !m.InVocabulary("cat") || !m.InVocabulary("the") {
		t.Error("expected frequent words to be in the vocabulary")
	}

	// No sub-threshold token may appear in the table, as context or as a
	// predicted token.
	for key, dist := range m.table {
		for _, tok := range splitContextKey(key) {
			if !m.InVocabulary(tok) {
				t.Errorf("context %q contains out-of-vocabulary token %q", key, tok)
			}
		}
		for tok := range dist {
			if !m.InVocabulary(tok) {
				t.Errorf("context %q predicts out-of-vocabulary token %q", key, tok)
			}
		}
	}
}

func TestTrainNoUsableSentences(t *testing.T) {
	testCases := []struct {
		name      string
		sentences []string
	}{
		{"nil input", nil},
		{"empty slice", []string{}},
		{"all sentences too short", []string{"no", "go", "12 34"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(WithSeed(1))
			err := m.Train(tc.sentences)
			if !errors.Is(err, ErrNoTrainingData) {
				t.Errorf("Train() error = %v, want ErrNoTrainingData", err)
			}
			if m.IsTrained() {
				t.Error("model must stay untrained after a failed Train call")
			}
		})
	}
}

func TestTrainReplacesPriorState(t *testing.T) {
	m := New(WithNGramSize(2), WithMinCount(1), WithSeed(1))
	if err := m.Train([]string{"alpha beta gamma delta."}); err != nil {
		t.Fatalf("first Train() failed: %v", err)
	}
	if !m.InVocabulary("alpha") {
		t.Fatal("expected first corpus to populate the vocabulary")
	}

	if err := m.Train([]string{"omega sigma theta kappa."}); err != nil {
		t.Fatalf("second Train() failed: %v", err)
	}
	if m.InVocabulary("alpha") {
		t.Error("retraining must fully replace the vocabulary, not merge it")
	}
	if !m.InVocabulary("omega") {
		t.Error("expected second corpus to populate the vocabulary")
	}
}

func TestTrainRecordsSentenceStarters(t *testing.T) {
	m := newTrainedModel(t)

	stats := m.Stats()
	if stats.SentenceStarters == 0 {
		t.Fatal("expected title-cased sentence openers to be recorded as starters")
	}

	// Every test sentence opens with a title-cased word, so prompt-less
	// generation must seed from a starter, never from uniform vocabulary.
	out := m.Generate("", 1, 0)
	first := strings.ToLower(strings.Fields(out)[0])
	if first != "the" && first != "two" {
		t.Errorf("expected a recorded starter as the seed, got %q", first)
	}
}

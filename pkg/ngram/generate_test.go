package ngram

import (
	"strings"
	"testing"
)

func TestGenerateDeterministicAtZeroTemperature(t *testing.T) {
	m := newTrainedModel(t)

	first := m.Generate("the little boat", 10, 0)
	for i := 0; i < 5; i++ {
		if got := m.Generate("the little boat", 10, 0); got != first {
			t.Fatalf("temperature-0 generation is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestGenerateBackoff(t *testing.T) {
	// Hand-built model with a gap at the full context but an entry at the
	// shorter one. The generator must use the shorter-context entry rather
	// than falling straight to a random token.
	m := New(WithNGramSize(3), WithSeed(1))
	m.vocab = map[string]struct{}{"alpha": {}, "beta": {}, "gamma": {}}
	m.vocabList = sortedVocabList(m.vocab)
	m.table = map[string]map[string]float64{
		"beta": {"gamma": 1.0},
	}
	m.trained = true

	got := m.Generate("alpha beta", 1, 0)
	if got != "Alpha beta gamma" {
		t.Errorf("Generate() = %q, want %q", got, "Alpha beta gamma")
	}
}

func TestGenerateStopsAtTerminal(t *testing.T) {
	m := newTrainedModel(t)

	out := m.Generate("the old", 200, 0)
	if !strings.HasSuffix(out, ".") {
		t.Errorf("expected generation to stop at a terminal token, got %q", out)
	}
	if strings.Contains(out, " .") {
		t.Errorf("terminal punctuation must attach to the preceding word, got %q", out)
	}
	if len(strings.Fields(out)) > 201 {
		t.Errorf("generation exceeded the token budget: %q", out)
	}
}

func TestGenerateCapitalizesFirstWord(t *testing.T) {
	m := newTrainedModel(t)

	out := m.Generate("quiet river", 5, 0)
	if out == "" {
		t.Fatal("expected non-empty output")
	}
	first := out[0]
	if first < 'A' || first > 'Z' {
		t.Errorf("expected capitalized first word, got %q", out)
	}
}

func TestGenerateUntrainedFallback(t *testing.T) {
	allowed := make(map[string]struct{})
	for _, w := range basicGrammar.starters {
		allowed[w] = struct{}{}
	}
	for _, w := range basicGrammar.commonWords {
		allowed[w] = struct{}{}
	}
	allowed[placeholderWord] = struct{}{}

	m := New(WithSeed(3))
	for i := 0; i < 10; i++ {
		out := m.Generate("", 15, 0.8)
		if !strings.HasPrefix(out, untrainedPrefix) {
			t.Fatalf("untrained output missing label: %q", out)
		}

		body := strings.TrimPrefix(out, untrainedPrefix)
		words := strings.Fields(body)
		if len(words) == 0 {
			t.Fatal("untrained output has no body")
		}

		last := words[len(words)-1]
		if last != "." && last != "!" && last != "?" {
			t.Errorf("untrained output must end with punctuation, got %q", last)
		}
		for _, w := range words[:len(words)-1] {
			if _, ok := allowed[w]; !ok {
				t.Errorf("untrained output contains word %q outside the fixed grammar", w)
			}
		}
	}
}

func TestGenerateUntrainedKeepsPrompt(t *testing.T) {
	m := New(WithSeed(3))
	out := m.Generate("dragons and castles", 5, 1.0)
	if !strings.Contains(out, "dragons and castles") {
		t.Errorf("untrained output should echo the prompt, got %q", out)
	}
}

func TestGenerateEmptyVocabulary(t *testing.T) {
	// A single sentence of unique words leaves every count below the
	// default frequency gate: training succeeds but the vocabulary is
	// empty, and generation must still return a string instead of
	// panicking on the random-vocabulary draws.
	m := New(WithSeed(11))
	err := m.Train([]string{"Quick brown foxes jumped over lazy sleeping dogs tonight."})
	if err != nil {
		t.Fatalf("Train() failed: %v", err)
	}
	if !m.IsTrained() {
		t.Fatal("model should be trained")
	}
	if m.InVocabulary("quick") {
		t.Fatal("no word should have survived the frequency gate")
	}

	for _, prompt := range []string{"", "quick brown", "unrelated words"} {
		out := m.Generate(prompt, 10, 0.8)
		if out == "" {
			t.Errorf("Generate(%q) returned an empty string", prompt)
		}
		if !strings.HasPrefix(out, untrainedPrefix) {
			t.Errorf("Generate(%q) = %q, want the fixed-grammar fallback", prompt, out)
		}
	}

	if got := m.Suggest("quick brown", 5); got != nil {
		t.Errorf("Suggest() on an empty-vocabulary model = %v, want nil", got)
	}
}

func TestGenerateAlwaysReturnsString(t *testing.T) {
	testCases := []struct {
		name        string
		trained     bool
		prompt      string
		maxTokens   int
		temperature float64
	}{
		{"trained empty prompt", true, "", 20, 1.0},
		{"trained unknown prompt", true, "zzyzx qwerty", 20, 1.0},
		{"trained zero budget", true, "the little", 0, 1.0},
		{"untrained zero budget", false, "", 0, 1.0},
		{"high temperature", true, "the", 20, 5.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var m *Model
			if tc.trained {
				m = newTrainedModel(t)
			} else {
				m = New(WithSeed(9))
			}
			out := m.Generate(tc.prompt, tc.maxTokens, tc.temperature)
			if out == "" {
				t.Error("Generate() returned an empty string")
			}
		})
	}
}

package ngram

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
)

const (
	// DefaultNGramSize is the window width used when no explicit size is given:
	// two tokens of context predicting a third.
	DefaultNGramSize = 3
	// DefaultMinCount is the default minimum corpus frequency for a token to
	// enter the vocabulary.
	DefaultMinCount = 2
)

// Model is an n-gram language model. It holds the frequency-gated vocabulary,
// the per-context probability tables, and the sentence starters recorded
// during training.
//
// A Model is not safe for concurrent use while Train or Load is in flight;
// callers that share a Model across goroutines must serialize training
// against all other operations.
type Model struct {
	n        int
	minCount int

	vocab      map[string]struct{}
	vocabList  []string // sorted; rebuilt on train and load
	wordCounts map[string]int
	table      map[string]map[string]float64 // context key -> next token -> probability
	starters   []string
	trained    bool

	rng    *rand.Rand
	logger *slog.Logger
}

// Option is a function that configures a Model.
type Option func(*Model)

// WithNGramSize sets the n-gram window width. Values below 2 are clamped to 2
// (a context of at least one token is always required).
func WithNGramSize(n int) Option {
	return func(m *Model) {
		if n < 2 {
			n = 2
		}
		m.n = n
	}
}

// WithMinCount sets the minimum corpus frequency a token needs to enter the
// vocabulary.
func WithMinCount(count int) Option {
	return func(m *Model) {
		if count < 1 {
			count = 1
		}
		m.minCount = count
	}
}

// WithSeed seeds the model's random source. Two models with the same seed,
// the same state, and the same call sequence produce identical output.
func WithSeed(seed uint64) Option {
	return func(m *Model) {
		m.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithRandSource replaces the model's random source entirely.
func WithRandSource(rng *rand.Rand) Option {
	return func(m *Model) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// New creates an untrained Model with default settings, which can be
// overridden by providing one or more Option functions.
func New(opts ...Option) *Model {
	m := &Model{
		n:          DefaultNGramSize,
		minCount:   DefaultMinCount,
		vocab:      make(map[string]struct{}),
		wordCounts: make(map[string]int),
		table:      make(map[string]map[string]float64),
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// IsTrained reports whether the model has completed a training run.
func (m *Model) IsTrained() bool { return m.trained }

// NGramSize returns the configured window width n.
func (m *Model) NGramSize() int { return m.n }

// MinCount returns the configured vocabulary frequency threshold.
func (m *Model) MinCount() int { return m.minCount }

// InVocabulary reports whether a token survived the frequency gate.
func (m *Model) InVocabulary(token string) bool {
	_, ok := m.vocab[token]
	return ok
}

// contextKey builds the table key for an ordered context. Tokens contain only
// letters or a single terminal mark, so joining on spaces is unambiguous.
func contextKey(tokens []string) string {
	return strings.Join(tokens, " ")
}

// splitContextKey is the inverse of contextKey.
func splitContextKey(key string) []string {
	return strings.Split(key, " ")
}

// filterVocab returns the tokens that are in the vocabulary, in order.
func (m *Model) filterVocab(tokens []string) []string {
	kept := tokens[:0:0]
	for _, tok := range tokens {
		if _, ok := m.vocab[tok]; ok {
			kept = append(kept, tok)
		}
	}
	return kept
}

// sortedVocabList rebuilds the deterministic vocabulary ordering used for
// random draws and id assignment.
func sortedVocabList(vocab map[string]struct{}) []string {
	list := make([]string, 0, len(vocab))
	for tok := range vocab {
		list = append(list, tok)
	}
	sort.Strings(list)
	return list
}

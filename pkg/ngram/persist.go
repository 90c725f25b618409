package ngram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/natefinch/atomic"
)

// modelFile is the on-disk representation of a Model. Context keys are
// encoded as ordered token lists, never as any stringified compound form
// that would need re-parsing beyond plain JSON.
type modelFile struct {
	N                int                `json:"n"`
	MinCount         int                `json:"min_count"`
	Vocabulary       []string           `json:"vocabulary"`
	WordCounts       map[string]int     `json:"word_counts"`
	WordIDs          map[string]int     `json:"word_ids"`
	SentenceStarters []string           `json:"sentence_starters"`
	IsTrained        bool               `json:"is_trained"`
	Table            []persistedContext `json:"ngram_table"`
}

// persistedContext is one context's distribution in the model file.
type persistedContext struct {
	Context      []string           `json:"context"`
	Distribution map[string]float64 `json:"distribution"`
}

// Save writes the full model state to path atomically. The saved file
// restores a model that, given an identical seed, generates byte-identical
// output to this one.
func (m *Model) Save(path string) error {
	file := modelFile{
		N:                m.n,
		MinCount:         m.minCount,
		Vocabulary:       m.vocabList,
		WordCounts:       m.wordCounts,
		WordIDs:          make(map[string]int, len(m.vocabList)),
		SentenceStarters: m.starters,
		IsTrained:        m.trained,
		Table:            make([]persistedContext, 0, len(m.table)),
	}

	// Stable ids, assigned in sorted vocabulary order. They exist for the
	// persistence contract only; runtime lookups are by token string.
	for i, tok := range m.vocabList {
		file.WordIDs[tok] = i
	}

	keys := make([]string, 0, len(m.table))
	for key := range m.table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		file.Table = append(file.Table, persistedContext{
			Context:      splitContextKey(key),
			Distribution: m.table[key],
		})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("ngram: could not marshal model: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("ngram: could not write model file: %w", err)
	}

	m.logger.Info("model saved",
		slog.String("path", path),
		slog.Int("vocabulary_size", len(m.vocabList)),
		slog.Int("contexts", len(m.table)),
	)
	return nil
}

// Load reads a persisted model from path and reconstructs its runtime state.
// Options (typically WithSeed or WithRandSource) apply to the restored
// model. A missing, unreadable, or structurally invalid file is an error;
// the caller decides whether to fall back to a fresh untrained model.
func Load(path string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ngram: could not read model file: %w", err)
	}

	var file modelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ngram: could not parse model file: %w", err)
	}
	if file.N < 2 {
		return nil, fmt.Errorf("ngram: model file has invalid n-gram size %d", file.N)
	}

	m := New(WithNGramSize(file.N), WithMinCount(file.MinCount))
	for _, opt := range opts {
		opt(m)
	}

	m.vocab = make(map[string]struct{}, len(file.Vocabulary))
	for _, tok := range file.Vocabulary {
		m.vocab[tok] = struct{}{}
	}
	m.vocabList = sortedVocabList(m.vocab)
	if file.WordCounts != nil {
		m.wordCounts = file.WordCounts
	}
	m.starters = file.SentenceStarters

	m.table = make(map[string]map[string]float64, len(file.Table))
	for _, entry := range file.Table {
		if len(entry.Context) != file.N-1 {
			return nil, fmt.Errorf("ngram: model file has context of length %d, want %d", len(entry.Context), file.N-1)
		}
		if len(entry.Distribution) == 0 {
			return nil, fmt.Errorf("ngram: model file has empty distribution for context %q", contextKey(entry.Context))
		}
		m.table[contextKey(entry.Context)] = entry.Distribution
	}

	m.trained = file.IsTrained

	m.logger.Info("model loaded",
		slog.String("path", path),
		slog.Int("vocabulary_size", len(m.vocabList)),
		slog.Int("contexts", len(m.table)),
	)
	return m, nil
}

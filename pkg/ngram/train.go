package ngram

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrNoTrainingData is returned by Train when no usable sentences remain
// after tokenization. Callers can distinguish it from corpus-level "no files
// found" conditions, which never reach Train.
var ErrNoTrainingData = errors.New("ngram: no training sentences provided")

// Train fits the model on a set of sentences. It builds the word counts,
// derives the frequency-gated vocabulary, and converts per-context
// next-token counts into maximum-likelihood probability distributions.
//
// A successful call fully replaces any previous state; there is no
// incremental merge. On error the model is left untouched.
func (m *Model) Train(sentences []string) error {
	if len(sentences) == 0 {
		return ErrNoTrainingData
	}

	wordCounts := make(map[string]int)
	var starters []string
	processed := make([][]string, 0, len(sentences))

	for _, sentence := range sentences {
		words := Tokenize(sentence)
		if len(words) < m.n {
			continue
		}
		processed = append(processed, words)

		// Record the starter only when the raw sentence opens with a
		// title-cased form of its first token.
		if starter, ok := titleCaseStarter(sentence); ok && strings.ToLower(starter) == words[0] {
			starters = append(starters, starter)
		}

		for _, w := range words {
			wordCounts[w]++
		}
	}

	if len(processed) == 0 {
		return ErrNoTrainingData
	}

	vocab := make(map[string]struct{})
	for w, count := range wordCounts {
		if count >= m.minCount {
			vocab[w] = struct{}{}
		}
	}

	// Sliding window over vocabulary-filtered sequences. Dropping
	// out-of-vocabulary tokens can juxtapose originally non-adjacent words;
	// that approximation is part of the model's contract.
	counts := make(map[string]map[string]int)
	for _, words := range processed {
		kept := words[:0:0]
		for _, w := range words {
			if _, ok := vocab[w]; ok {
				kept = append(kept, w)
			}
		}
		if len(kept) < m.n {
			continue
		}
		for i := 0; i+m.n <= len(kept); i++ {
			key := contextKey(kept[i : i+m.n-1])
			next := kept[i+m.n-1]
			inner, ok := counts[key]
			if !ok {
				inner = make(map[string]int)
				counts[key] = inner
			}
			inner[next]++
		}
	}

	table := make(map[string]map[string]float64, len(counts))
	for key, nexts := range counts {
		total := 0
		for _, c := range nexts {
			total += c
		}
		dist := make(map[string]float64, len(nexts))
		for tok, c := range nexts {
			dist[tok] = float64(c) / float64(total)
		}
		table[key] = dist
	}

	m.wordCounts = wordCounts
	m.vocab = vocab
	m.vocabList = sortedVocabList(vocab)
	m.table = table
	m.starters = starters
	m.trained = true

	m.logger.Info("training completed",
		slog.Int("sentences", len(processed)),
		slog.Int("vocabulary_size", len(vocab)),
		slog.Int("contexts", len(table)),
		slog.Int("sentence_starters", len(starters)),
	)

	return nil
}

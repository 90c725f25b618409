package ngram

import "sort"

// WordCount pairs a vocabulary word with its total corpus frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ModelStats holds a snapshot of a model's aggregate state, suitable for
// status endpoints and diagnostics.
type ModelStats struct {
	IsTrained        bool        `json:"is_trained"`
	NGramSize        int         `json:"ngram_size"`
	MinCount         int         `json:"min_count"`
	VocabularySize   int         `json:"vocabulary_size"`
	TotalContexts    int         `json:"total_contexts"`
	SentenceStarters int         `json:"sentence_starters"`
	MostCommonWords  []WordCount `json:"most_common_words"`
}

// Stats returns a snapshot of the model's statistics, including the ten most
// common vocabulary words.
func (m *Model) Stats() ModelStats {
	starters := make(map[string]struct{}, len(m.starters))
	for _, s := range m.starters {
		starters[s] = struct{}{}
	}

	common := make([]WordCount, 0, len(m.wordCounts))
	for w, c := range m.wordCounts {
		common = append(common, WordCount{Word: w, Count: c})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Word < common[j].Word
	})
	if len(common) > 10 {
		common = common[:10]
	}

	return ModelStats{
		IsTrained:        m.trained,
		NGramSize:        m.n,
		MinCount:         m.minCount,
		VocabularySize:   len(m.vocab),
		TotalContexts:    len(m.table),
		SentenceStarters: len(starters),
		MostCommonWords:  common,
	}
}

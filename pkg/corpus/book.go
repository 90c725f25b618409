package corpus

import "strings"

// Book is a single accepted source text. It is created by the Processor and
// never modified afterwards.
type Book struct {
	Title         string   `json:"title"`
	Filename      string   `json:"filename"`
	Content       string   `json:"-"`
	Sentences     []string `json:"-"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// BookStats is the per-book slice of a corpus summary.
type BookStats struct {
	Title     string `json:"title"`
	Sentences int    `json:"sentences"`
	Words     int    `json:"words"`
}

// Stats summarizes an accepted corpus.
type Stats struct {
	NumBooks       int         `json:"num_books"`
	TotalSentences int         `json:"total_sentences"`
	TotalWords     int         `json:"total_words"`
	Books          []BookStats `json:"books"`
}

// Summarize aggregates statistics over a set of books.
func Summarize(books []Book) Stats {
	stats := Stats{NumBooks: len(books)}
	for _, b := range books {
		stats.TotalSentences += b.SentenceCount
		stats.TotalWords += b.WordCount
		stats.Books = append(stats.Books, BookStats{
			Title:     b.Title,
			Sentences: b.SentenceCount,
			Words:     b.WordCount,
		})
	}
	return stats
}

// TrainingSentences flattens the accepted sentences of all books, in book
// order, into the slice handed to a model trainer.
func TrainingSentences(books []Book) []string {
	var sentences []string
	for _, b := range books {
		sentences = append(sentences, b.Sentences...)
	}
	return sentences
}

// wordCount counts whitespace-separated fields; used for the Book summary
// only, not for model tokenization.
func wordCount(content string) int {
	return len(strings.Fields(content))
}

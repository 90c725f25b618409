package corpus

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// textExtension is the only file extension considered for loading.
	textExtension = ".txt"
	// minContentLength rejects files too short to contain usable prose.
	minContentLength = 100
	// minBookSentences discards whole books that yield too few accepted
	// sentences.
	minBookSentences = 10
)

// Processor loads books from a directory and refines them into training
// sentences.
type Processor struct {
	minSentenceLen int
	maxSentenceLen int
	logger         *slog.Logger
}

// Option is a function that configures a Processor.
type Option func(*Processor)

// WithSentenceLength sets the accepted sentence length range in characters.
// Defaults: 10 to 500.
func WithSentenceLength(minLen, maxLen int) Option {
	return func(p *Processor) {
		p.minSentenceLen = minLen
		p.maxSentenceLen = maxLen
	}
}

// NewProcessor creates a Processor with default settings, which can be
// overridden by providing one or more Option functions.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		minSentenceLen: 10,
		maxSentenceLen: 500,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetLogger sets the logger for the Processor. By default, all logs are
// discarded.
func (p *Processor) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// LoadDirectory loads every .txt file directly inside dir (non-recursive)
// and returns the books that pass all quality gates. A missing or empty
// directory yields an empty result, not an error; per-file failures are
// logged and skipped. Only unexpected I/O conditions are returned as errors.
func (p *Processor) LoadDirectory(dir string) ([]Book, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Warn("corpus directory does not exist", slog.String("dir", dir))
			return nil, nil
		}
		return nil, fmt.Errorf("corpus: could not read directory %s: %w", dir, err)
	}

	var books []Book
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != textExtension {
			continue
		}
		book, ok := p.loadBook(filepath.Join(dir, entry.Name()), entry.Name())
		if !ok {
			continue
		}
		books = append(books, book)
		p.logger.Info("loaded book",
			slog.String("title", book.Title),
			slog.String("file", book.Filename),
			slog.Int("sentences", book.SentenceCount),
		)
	}

	if len(books) == 0 {
		p.logger.Warn("no usable books found", slog.String("dir", dir))
	}
	return books, nil
}

// loadBook reads and refines a single file. It returns ok=false for every
// per-file rejection; none of those abort the surrounding batch.
func (p *Processor) loadBook(path, filename string) (Book, bool) {
	content, err := readTextFile(path)
	if err != nil {
		p.logger.Warn("skipping unreadable file",
			slog.String("file", filename),
			slog.Any("error", err),
		)
		return Book{}, false
	}

	if len(strings.TrimSpace(content)) < minContentLength {
		p.logger.Warn("skipping file: too short", slog.String("file", filename))
		return Book{}, false
	}

	title := p.extractTitle(filename, content)
	cleaned := Normalize(content)
	sentences := p.FilterSentences(SplitSentences(cleaned))

	if len(sentences) < minBookSentences {
		p.logger.Warn("skipping file: too few good sentences",
			slog.String("file", filename),
			slog.Int("sentences", len(sentences)),
		)
		return Book{}, false
	}

	return Book{
		Title:         title,
		Filename:      filename,
		Content:       cleaned,
		Sentences:     sentences,
		WordCount:     wordCount(cleaned),
		SentenceCount: len(sentences),
	}, true
}

// readTextFile reads a file as UTF-8, falling back to a Latin-1 decode when
// the content is not valid UTF-8.
func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decode: %w", err)
	}
	return string(decoded), nil
}

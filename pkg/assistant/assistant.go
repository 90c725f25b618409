package assistant

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jswitzer/quillgen/pkg/corpus"
	"github.com/jswitzer/quillgen/pkg/ngram"
)

// ErrTrainingInProgress is returned by TrainFromBooks while another
// training run holds the latch.
var ErrTrainingInProgress = errors.New("assistant: training already in progress")

const defaultTemperature = 0.8

// Exchange is one user/bot turn in the conversation history.
type Exchange struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Bot       string    `json:"bot"`
}

// TrainReport summarizes a completed training run.
type TrainReport struct {
	Corpus       corpus.Stats     `json:"corpus"`
	Model        ngram.ModelStats `json:"model"`
	TrainedAt    time.Time        `json:"trained_at"`
	SampleCorpus bool             `json:"sample_corpus"`
}

// Status is a combined snapshot of the model, the last trained corpus,
// and the conversation.
type Status struct {
	Model         ngram.ModelStats `json:"model"`
	Corpus        corpus.Stats     `json:"corpus"`
	Training      bool             `json:"training"`
	HistoryLength int              `json:"history_length"`
}

// Assistant binds a model and a corpus processor into a writing helper.
// All methods are safe for concurrent use.
type Assistant struct {
	mu          sync.RWMutex
	model       *ngram.Model
	processor   *corpus.Processor
	corpusStats corpus.Stats
	history     []Exchange

	training atomic.Bool
	logger   *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithProcessor replaces the default corpus processor.
func WithProcessor(p *corpus.Processor) Option {
	return func(a *Assistant) {
		if p != nil {
			a.processor = p
		}
	}
}

// New wraps model in an Assistant. The model handle is owned by the
// Assistant from here on.
func New(model *ngram.Model, opts ...Option) *Assistant {
	a := &Assistant{
		model:     model,
		processor: corpus.NewProcessor(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetLogger replaces the discard logger.
func (a *Assistant) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// Model returns the owned model handle. Callers must not train or load
// through it directly; use TrainFromBooks and LoadModel.
func (a *Assistant) Model() *ngram.Model {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model
}

// TrainFromBooks loads every acceptable book under dir, trains the model
// on the combined sentences, and optionally saves the result to savePath.
// When dir is missing or yields no books the bundled sample corpus is
// written there first. Only one training run may be in flight; concurrent
// calls fail fast with ErrTrainingInProgress.
func (a *Assistant) TrainFromBooks(dir, savePath string) (TrainReport, error) {
	if !a.training.CompareAndSwap(false, true) {
		return TrainReport{}, ErrTrainingInProgress
	}
	defer a.training.Store(false)

	a.logger.Info("training from books", "dir", dir)

	books, err := a.processor.LoadDirectory(dir)
	if err != nil {
		return TrainReport{}, fmt.Errorf("loading corpus: %w", err)
	}

	sampled := false
	if len(books) == 0 {
		a.logger.Warn("no usable books found, writing sample corpus", "dir", dir)
		if err := corpus.WriteSampleBooks(dir); err != nil {
			return TrainReport{}, fmt.Errorf("writing sample corpus: %w", err)
		}
		sampled = true
		books, err = a.processor.LoadDirectory(dir)
		if err != nil {
			return TrainReport{}, fmt.Errorf("loading sample corpus: %w", err)
		}
	}

	sentences := corpus.TrainingSentences(books)

	a.mu.Lock()
	err = a.model.Train(sentences)
	if err == nil {
		a.corpusStats = corpus.Summarize(books)
	}
	a.mu.Unlock()
	if err != nil {
		return TrainReport{}, err
	}

	if savePath != "" {
		if err := a.SaveModel(savePath); err != nil {
			return TrainReport{}, err
		}
	}

	report := TrainReport{
		Corpus:       corpus.Summarize(books),
		Model:        a.Model().Stats(),
		TrainedAt:    time.Now(),
		SampleCorpus: sampled,
	}
	a.logger.Info("training completed",
		"books", report.Corpus.NumBooks,
		"sentences", report.Corpus.TotalSentences,
		"vocabulary", report.Model.VocabularySize)
	return report, nil
}

// Generate produces text from the model. Sampling advances the model's
// random source, so this takes the exclusive lock.
func (a *Assistant) Generate(prompt string, maxTokens int, temperature float64) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model.Generate(prompt, maxTokens, temperature)
}

// Suggest returns up to k next-word suggestions for context.
func (a *Assistant) Suggest(context string, k int) []ngram.Suggestion {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model.Suggest(context, k)
}

// Chat takes a free-form user message, classifies its intent, and returns
// a response built from the model. The exchange is appended to the
// conversation history.
func (a *Assistant) Chat(input string) string {
	in := classifyIntent(input)

	a.mu.Lock()
	defer a.mu.Unlock()

	response := a.respond(input, in)
	a.history = append(a.history, Exchange{
		Timestamp: time.Now(),
		User:      input,
		Bot:       response,
	})
	return response
}

// History returns a copy of the conversation history.
func (a *Assistant) History() []Exchange {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Exchange, len(a.history))
	copy(out, a.history)
	return out
}

// ClearHistory discards the conversation history.
func (a *Assistant) ClearHistory() {
	a.mu.Lock()
	a.history = nil
	a.mu.Unlock()
	a.logger.Info("conversation history cleared")
}

// Status reports the current model, corpus, and conversation state.
func (a *Assistant) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return Status{
		Model:         a.model.Stats(),
		Corpus:        a.corpusStats,
		Training:      a.training.Load(),
		HistoryLength: len(a.history),
	}
}

// SaveModel persists the model to path.
func (a *Assistant) SaveModel(path string) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model.Save(path)
}

// LoadModel replaces the owned model with one loaded from path. The
// current model is kept on error.
func (a *Assistant) LoadModel(path string, opts ...ngram.Option) error {
	model, err := ngram.Load(path, opts...)
	if err != nil {
		return err
	}
	model.SetLogger(a.logger)

	a.mu.Lock()
	a.model = model
	a.mu.Unlock()
	a.logger.Info("model loaded", "path", path)
	return nil
}

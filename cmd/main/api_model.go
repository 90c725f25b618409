package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jswitzer/quillgen/pkg/assistant"
	"github.com/jswitzer/quillgen/pkg/ngram"
)

// ModelAPI holds the dependencies for the model API handlers.
type ModelAPI struct {
	asst   *assistant.Assistant
	config *Config
	logger *slog.Logger
}

// NewModelAPI creates a new instance of the ModelAPI.
func NewModelAPI(asst *assistant.Assistant, config *Config, logger *slog.Logger) *ModelAPI {
	return &ModelAPI{
		asst:   asst,
		config: config,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for all model endpoints.
func (m *ModelAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", m.handleGenerate)
	mux.HandleFunc("/api/suggest", m.handleSuggest)
	mux.HandleFunc("/api/train", m.handleTrain)
	mux.HandleFunc("/api/status", m.handleStatus)
	mux.HandleFunc("/api/model/save", m.handleSave)
	mux.HandleFunc("/api/model/load", m.handleLoad)
}

type GenerateRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type SuggestRequest struct {
	Context string `json:"context"`
	Count   int    `json:"count"`
}

type SuggestResponse struct {
	Suggestions []ngram.Suggestion `json:"suggestions"`
}

type TrainRequest struct {
	BooksDir  string `json:"books_dir"`
	SaveModel bool   `json:"save_model"`
}

type ModelPathRequest struct {
	Path string `json:"path"`
}

// handleGenerate produces text from the model. Missing request fields
// fall back to the configured generation defaults.
func (m *ModelAPI) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = m.config.Model.MaxTokens
	}
	temperature := m.config.Model.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	text := m.asst.Generate(req.Prompt, maxTokens, temperature)
	respondWithJSON(w, http.StatusOK, GenerateResponse{Text: text})
}

// handleSuggest returns next-word suggestions for a text context.
func (m *ModelAPI) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	suggestions := m.asst.Suggest(req.Context, req.Count)
	if suggestions == nil {
		suggestions = []ngram.Suggestion{}
	}
	respondWithJSON(w, http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// handleTrain trains the model from a directory of book files. Only one
// training run may be in flight at a time.
func (m *ModelAPI) handleTrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// An empty body means "train from the configured directory".
	var req TrainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}

	booksDir := req.BooksDir
	if booksDir == "" {
		booksDir = m.config.Server.BooksDir
	}
	savePath := ""
	if req.SaveModel {
		savePath = m.config.Server.ModelPath
	}

	report, err := m.asst.TrainFromBooks(booksDir, savePath)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrTrainingInProgress):
			respondWithError(w, http.StatusConflict, "Training is already in progress")
		case errors.Is(err, ngram.ErrNoTrainingData):
			respondWithError(w, http.StatusBadRequest, "No usable training sentences in the corpus")
		default:
			m.logger.Error("Training failed", "dir", booksDir, "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Training failed: %v", err))
		}
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// handleStatus returns the combined model, corpus, and conversation state.
func (m *ModelAPI) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, m.asst.Status())
}

// handleSave persists the model, to the configured path unless the
// request names another.
func (m *ModelAPI) handleSave(w http.ResponseWriter, r *http.Request) {
	path, ok := m.modelPath(w, r)
	if !ok {
		return
	}

	if err := m.asst.SaveModel(path); err != nil {
		m.logger.Error("Failed to save model", "path", path, "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save model: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"path": path})
}

// handleLoad replaces the live model with one loaded from disk.
func (m *ModelAPI) handleLoad(w http.ResponseWriter, r *http.Request) {
	path, ok := m.modelPath(w, r)
	if !ok {
		return
	}

	if err := m.asst.LoadModel(path); err != nil {
		m.logger.Error("Failed to load model", "path", path, "error", err)
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Failed to load model: %v", err))
		return
	}
	respondWithJSON(w, http.StatusOK, m.asst.Status())
}

// modelPath validates a save/load request and resolves its target path.
func (m *ModelAPI) modelPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return "", false
	}

	var req ModelPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return "", false
	}

	path := req.Path
	if path == "" {
		path = m.config.Server.ModelPath
	}
	if path == "" {
		respondWithError(w, http.StatusBadRequest, "No model path configured or provided")
		return "", false
	}
	return path, true
}

package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jswitzer/quillgen/pkg/assistant"
)

// ChatAPI holds the dependencies for the conversational handlers.
type ChatAPI struct {
	asst   *assistant.Assistant
	logger *slog.Logger
}

// NewChatAPI creates a new instance of the ChatAPI.
func NewChatAPI(asst *assistant.Assistant, logger *slog.Logger) *ChatAPI {
	return &ChatAPI{
		asst:   asst,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for all chat endpoints.
func (c *ChatAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/chat", c.handleChat)
	mux.HandleFunc("/api/chat/history", c.handleHistory)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// handleChat answers a single user message.
func (c *ChatAPI) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "A message is required")
		return
	}

	response := c.asst.Chat(req.Message)
	respondWithJSON(w, http.StatusOK, ChatResponse{Response: response})
}

// handleHistory returns or clears the conversation history.
func (c *ChatAPI) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondWithJSON(w, http.StatusOK, c.asst.History())
	case http.MethodDelete:
		c.asst.ClearHistory()
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, DELETE")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

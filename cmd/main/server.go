package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jswitzer/quillgen/pkg/assistant"
)

type Server struct {
	config    *Config
	db        *sql.DB
	logger    *slog.Logger
	asst      *assistant.Assistant
	modelAPI  *ModelAPI
	chatAPI   *ChatAPI
	statsAPI  *StatsAPI
	serverAPI *ServerAPI
	apiMux    *http.ServeMux
}

func NewServer(config *Config, configPath string, logger *slog.Logger, db *sql.DB, asst *assistant.Assistant, actionChan chan string) *Server {

	// api initialization
	modelAPI := NewModelAPI(asst, config, logger)
	chatAPI := NewChatAPI(asst, logger)
	statsAPI := NewStatsAPI(db, logger)
	serverAPI := NewServerAPI(config, configPath, actionChan, logger)

	// create object, register routes to the mux, and return it
	server := &Server{
		config:    config,
		db:        db,
		logger:    logger,
		asst:      asst,
		modelAPI:  modelAPI,
		chatAPI:   chatAPI,
		statsAPI:  statsAPI,
		serverAPI: serverAPI,
		apiMux:    http.NewServeMux(),
	}

	apiMux := http.NewServeMux()

	server.modelAPI.RegisterRoutes(apiMux)
	server.chatAPI.RegisterRoutes(apiMux)
	server.statsAPI.RegisterRoutes(apiMux)
	server.serverAPI.RegisterRoutes(apiMux)

	// Every api request passes through the hit counter first.
	server.apiMux.Handle("/api/", server.statsAPI.CountRequests(apiMux))
	server.apiMux.HandleFunc("/api/health", server.serverAPI.handleHealthCheck)

	return server
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		err := json.NewEncoder(w).Encode(payload)
		if err != nil {
			fmt.Printf("ERROR: Failed to encode JSON response: %v\n", err)
		}
	}
}

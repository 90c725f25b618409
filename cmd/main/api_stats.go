package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const statsSchema = `
CREATE TABLE IF NOT EXISTS stats_endpoint (
    endpoint      TEXT PRIMARY KEY,
    total_hits    INTEGER NOT NULL DEFAULT 1,
    first_seen    DATETIME NOT NULL,
    last_seen     DATETIME NOT NULL
);
`

// EndpointStats is the per-endpoint row of the request statistics.
type EndpointStats struct {
	Endpoint  string    `json:"endpoint"`
	TotalHits int       `json:"total_hits"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// StatsSummary provides a high-level overview of all collected stats.
type StatsSummary struct {
	TotalRequests   int64           `json:"total_requests"`
	UniqueEndpoints int64           `json:"unique_endpoints"`
	Endpoints       []EndpointStats `json:"endpoints"`
}

// StatsAPI holds the dependencies for the statistics handlers.
type StatsAPI struct {
	db     *sql.DB
	logger *slog.Logger
}

func setupStatsSchema(db *sql.DB) error {
	_, err := db.Exec(statsSchema)
	return err
}

func NewStatsAPI(db *sql.DB, logger *slog.Logger) *StatsAPI {
	return &StatsAPI{
		db:     db,
		logger: logger,
	}
}

func (s *StatsAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/stats", s.handleStats)
}

// CountRequests wraps an api handler and records one hit per request
// against its endpoint path.
func (s *StatsAPI) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.record(r); err != nil {
			s.logger.Warn("Failed to record request stats", "endpoint", r.URL.Path, "error", err)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *StatsAPI) record(r *http.Request) error {
	now := time.Now()
	_, err := s.db.ExecContext(r.Context(), `
        INSERT INTO stats_endpoint (endpoint, first_seen, last_seen) VALUES (?, ?, ?)
        ON CONFLICT(endpoint) DO UPDATE SET total_hits = total_hits + 1, last_seen = ?
    `, r.URL.Path, now, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert stats_endpoint: %w", err)
	}
	return nil
}

// handleStats returns the request statistics summary.
func (s *StatsAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	rows, err := s.db.QueryContext(r.Context(), "SELECT endpoint, total_hits, first_seen, last_seen FROM stats_endpoint ORDER BY total_hits DESC LIMIT 100")
	if err != nil {
		s.logger.Error("Failed to query endpoint stats", "error", err)
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		return
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var summary StatsSummary
	for rows.Next() {
		var es EndpointStats
		if err = rows.Scan(&es.Endpoint, &es.TotalHits, &es.FirstSeen, &es.LastSeen); err != nil {
			s.logger.Error("Failed to scan endpoint stats", "error", err)
			continue
		}
		summary.TotalRequests += int64(es.TotalHits)
		summary.UniqueEndpoints++
		summary.Endpoints = append(summary.Endpoints, es)
	}
	respondWithJSON(w, http.StatusOK, summary)
}

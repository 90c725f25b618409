package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/jswitzer/quillgen/pkg/assistant"
	"github.com/jswitzer/quillgen/pkg/ngram"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	configPath := pflag.String("config", "./config.json", "path to the JSON config file")
	pflag.Parse()

	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	actionChan := make(chan string, 1)

	go func() {
		osSignalChan := make(chan os.Signal, 1)
		signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM)
		<-osSignalChan // Wait for a signal
		baseLogger.Info("OS signal received, initiating shutdown.")
		actionChan <- actionShutdown
	}()

	for {
		action, err := run(*configPath, actionChan)
		if err != nil {
			baseLogger.Error("An error occurred during server run, shutting down.", "error", err)
			break
		}

		if action == actionRestart {
			baseLogger.Info("--- Server Restarting ---")
			continue
		} else {
			break
		}
	}

	baseLogger.Info("Quillgen has shut down.")
}

// run hosts the API server for one cycle and returns whenever the server
// is shut down or restarted.
func run(configPath string, actionChan chan string) (string, error) {

	config, err := LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(config.Server.LogLevel),
	}))
	logger.Info("Starting server cycle...")

	if err = os.MkdirAll(config.Server.DataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := initDB(config.Server.DatabasePath)
	if err != nil {
		return "", fmt.Errorf("failed to initialize database: %w", err)
	}

	if err = setupStatsSchema(db); err != nil {
		logger.Error("Failed to setup stats schema", "error", err)
	}

	asst := assistant.New(newModel(config.Model, config.Server.ModelPath, logger))
	asst.SetLogger(logger)

	server := NewServer(config, configPath, logger, db, asst, actionChan)

	httpServer := &http.Server{Addr: config.Server.ApiAddr, Handler: server.apiMux}

	go func() {
		logger.Info("Starting api server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Api server failed", "error", err)
		}
	}()

	action := <-actionChan // Block here until API or OS signal sends an action.

	logger.Info("Stopping server for " + action + "...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = httpServer.Shutdown(ctx); err != nil {
		logger.Error("Api server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped.")

	logger.Info("Closing database connection.")
	if err = db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	return action, nil
}

// newModel loads the persisted model when one exists at modelPath, and
// otherwise creates a fresh untrained model from the configured
// parameters.
func newModel(mc *ModelConfig, modelPath string, logger *slog.Logger) *ngram.Model {
	if modelPath != "" {
		if _, err := os.Stat(modelPath); err == nil {
			model, err := ngram.Load(modelPath)
			if err == nil {
				model.SetLogger(logger)
				logger.Info("Loaded existing model", "path", modelPath)
				return model
			}
			logger.Error("Failed to load model, starting untrained", "path", modelPath, "error", err)
		}
	}

	model := ngram.New(
		ngram.WithNGramSize(mc.NGramSize),
		ngram.WithMinCount(mc.MinCount),
	)
	model.SetLogger(logger)
	return model
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// ServerConfig holds the configuration for the HTTP server and data paths.
type ServerConfig struct {
	ApiAddr      string `json:"api_addr"`
	LogLevel     string `json:"log_level"`
	DataDir      string `json:"data_dir"`
	DatabasePath string `json:"database_path"`
	BooksDir     string `json:"books_dir"`
	ModelPath    string `json:"model_path"`
}

// ModelConfig holds the model parameters used when a fresh model is
// created and the generation defaults applied when a request omits them.
type ModelConfig struct {
	NGramSize   int     `json:"ngram_size"`
	MinCount    int     `json:"min_count"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Server *ServerConfig `json:"server_config"`
	Model  *ModelConfig  `json:"model_config"`
}

// DefaultServerConfig creates a server configuration with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ApiAddr:      ":7180",
		LogLevel:     "info",
		DataDir:      "./data",
		DatabasePath: "./data/quillgen_stats.db?_journal_mode=WAL&_busy_timeout=5000",
		BooksDir:     "./data/books",
		ModelPath:    "./data/model.json",
	}
}

// DefaultModelConfig creates a model configuration with default values.
func DefaultModelConfig() *ModelConfig {
	return &ModelConfig{
		NGramSize:   3,
		MinCount:    2,
		MaxTokens:   50,
		Temperature: 0.8,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Server: DefaultServerConfig(),
		Model:  DefaultModelConfig(),
	}

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the server can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig persists the configuration to disk atomically.
func SaveConfig(path string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Query engine names accepted in BIKESHARE_ENGINE and --engine.
const (
	EngineMemory = "memory"
	EngineSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	DatasetPath string
	Engine      string
	LogLevel    string
	LogFile     string
}

// Default values
const (
	defaultDatasetPath = "hour.csv"
	defaultEngine      = EngineMemory
	defaultLogLevel    = "info"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatasetPath: getEnvString("BIKESHARE_DATASET", defaultDatasetPath),
		Engine:      strings.ToLower(getEnvString("BIKESHARE_ENGINE", defaultEngine)),
		LogLevel:    strings.ToLower(getEnvString("LOG_LEVEL", defaultLogLevel)),
		LogFile:     getEnvString("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks option values that Load and flag overrides can produce.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineMemory, EngineSQLite:
	default:
		return fmt.Errorf("unknown engine %q (want %s or %s)", c.Engine, EngineMemory, EngineSQLite)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.DatasetPath == "" {
		return fmt.Errorf("dataset path must not be empty")
	}

	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "bikeshare-dashboard", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config holds tool configuration loaded from environment and file.
package config

import (
	"os"
	"strconv"
)

// Config holds application configuration.
// Priority: CLI flags → Env vars → config.toml → defaults
type Config struct {
	// BaseURL is the Admin API root. Empty selects the client's default
	// public endpoint.
	BaseURL string

	// TimeoutSeconds is the per-request HTTP deadline.
	TimeoutSeconds int

	// Output is the default artifact path.
	Output string

	// History enables the local run-history database.
	History bool

	// HistoryDB is the run-history database path.
	HistoryDB string
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	return &Config{
		BaseURL:        getEnvOrFile("LOGFETCH_BASE_URL", fileConfig.BaseURL, ""),
		TimeoutSeconds: getEnvIntOrFile("LOGFETCH_TIMEOUT_SECONDS", fileConfig.TimeoutSeconds, 30),
		Output:         getEnvOrFile("LOGFETCH_OUTPUT", fileConfig.Output, "logs.json"),
		History:        getEnvBoolOrFile("LOGFETCH_HISTORY", fileConfig.History, true),
		HistoryDB:      getEnvOrFile("LOGFETCH_HISTORY_DB", fileConfig.HistoryDB, DBPath()),
	}
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvIntOrFile returns env int, file int, or default (in priority order)
func getEnvIntOrFile(key string, fileValue *int, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	if fileValue != nil && *fileValue > 0 {
		return *fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}

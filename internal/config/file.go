package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds *int   `toml:"timeout_seconds"`
	Output         string `toml:"output"`
	History        *bool  `toml:"history"`
	HistoryDB      string `toml:"history_db"`
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# logfetch configuration
# base_url = "https://services.cloud.mongodb.com/api/admin/v3.0"
# timeout_seconds = 30

# Default artifact path (overridden by -out)
# output = "logs.json"

# Local run history (SQLite); disable with history = false
# history = true
# history_db = "~/.logfetch/history.db"
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the path to the logfetch data directory.
// - Windows: %APPDATA%\logfetch
// - Other OS: ~/.logfetch
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "logfetch")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".logfetch"
	}
	return filepath.Join(home, ".logfetch")
}

// ConfigPath returns the path to the config file (~/.logfetch/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// DBPath returns the path to the run-history database file.
func DBPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}

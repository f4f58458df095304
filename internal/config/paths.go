package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to plychess's configuration directory,
// ~/.plychess/, or an error if the home directory cannot be determined.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".plychess"), nil
}

// GetConfigPath returns the absolute path to the configuration file,
// ~/.plychess/config.toml. This is the only file plychess ever writes:
// preference state, not game state — no position or move history is ever
// persisted.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

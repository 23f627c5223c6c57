// ABOUTME: Configuration management with JSON file plus env overrides.
// ABOUTME: Opens the record store and habit history from configured paths.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"courtlog/internal/habit"
	"courtlog/internal/models"
	"courtlog/internal/storage"
)

// Config stores courtlog configuration. File values are overridden by
// environment variables where tagged.
type Config struct {
	// DataDir is the root directory for data storage. The SQLite database
	// and the habit history live here. Supports ~ expansion.
	DataDir string `json:"data_dir,omitempty" env:"COURTLOG_DATA_DIR"`

	// Scheme is the default grading scheme for new metrics.
	Scheme string `json:"scheme,omitempty" env:"COURTLOG_SCHEME"`

	// City is used for the weather lookup on habit check-in.
	City string `json:"city,omitempty" env:"COURTLOG_CITY"`

	// Lang is the language for weather descriptions.
	Lang string `json:"lang,omitempty" env:"COURTLOG_LANG"`

	// OpenAIKey enables AI feedback. Empty means the feature is disabled.
	OpenAIKey string `json:"openai_key,omitempty" env:"OPENAI_API_KEY"`

	// WeatherKey enables the weather lookup. Empty means disabled.
	WeatherKey string `json:"weather_key,omitempty" env:"COURTLOG_WEATHER_KEY"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetScheme returns the configured grading scheme, defaulting to primary.
func (c *Config) GetScheme() models.Scheme {
	if models.IsValidScheme(c.Scheme) {
		return models.Scheme(c.Scheme)
	}
	return models.SchemePrimary
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the record store at the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "courtlog.db")
	return storage.Open(dbPath)
}

// OpenHabits opens the habit history at the configured data directory.
func (c *Config) OpenHabits() (*habit.Store, error) {
	return habit.OpenStore(filepath.Join(c.GetDataDir(), "habits"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "courtlog", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

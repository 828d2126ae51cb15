package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Hevy     HevyConfig     `json:"hevy"`
	Strava   StravaConfig   `json:"strava"`
	Analysis AnalysisConfig `json:"analysis"`
	Calendar CalendarConfig `json:"calendar"`
}

// HevyConfig holds the Hevy API credentials
type HevyConfig struct {
	APIKey string `json:"api_key"`
}

// StravaConfig holds Strava API credentials
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AnalysisConfig tunes the correlation engine
type AnalysisConfig struct {
	// WindowWeeks is the expected spacing between body-composition
	// measurements; windows longer than twice this are rejected
	WindowWeeks int `json:"window_weeks"`
}

// CalendarConfig holds calendar preferences
type CalendarConfig struct {
	// Owner scopes the event list; empty shows everyone's events
	Owner string `json:"owner"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			WindowWeeks: 4,
		},
	}
}

// Load reads the configuration from ~/.fitdash/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Analysis.WindowWeeks == 0 {
		cfg.Analysis.WindowWeeks = defaults.Analysis.WindowWeeks
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.fitdash/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		Hevy: HevyConfig{
			APIKey: "YOUR_HEVY_API_KEY",
		},
		Strava: StravaConfig{
			ClientID:     "YOUR_CLIENT_ID",
			ClientSecret: "YOUR_CLIENT_SECRET",
		},
		Analysis: AnalysisConfig{
			WindowWeeks: 4,
		},
	}

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Hevy.APIKey == "" || c.Hevy.APIKey == "YOUR_HEVY_API_KEY" {
		return errors.New("hevy.api_key is required - get it from https://hevy.com/settings?developer")
	}
	if c.Strava.ClientID == "" || c.Strava.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" || c.Strava.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}

	if c.Analysis.WindowWeeks < 0 {
		return fmt.Errorf("analysis.window_weeks must be positive, got %d", c.Analysis.WindowWeeks)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitdash", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitdash"), nil
}

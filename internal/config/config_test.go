package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.WindowWeeks != 4 {
		t.Errorf("Analysis.WindowWeeks = %v, want 4", cfg.Analysis.WindowWeeks)
	}

	// Credentials should be empty by default
	if cfg.Hevy.APIKey != "" {
		t.Errorf("Hevy.APIKey should be empty, got %q", cfg.Hevy.APIKey)
	}
	if cfg.Strava.ClientID != "" {
		t.Errorf("Strava.ClientID should be empty, got %q", cfg.Strava.ClientID)
	}
	if cfg.Strava.ClientSecret != "" {
		t.Errorf("Strava.ClientSecret should be empty, got %q", cfg.Strava.ClientSecret)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "valid config",
			config: Config{
				Hevy: HevyConfig{APIKey: "hevy-key-123"},
				Strava: StravaConfig{
					ClientID:     "12345",
					ClientSecret: "abc123secret",
				},
			},
			expectError: false,
		},
		{
			name: "empty hevy key",
			config: Config{
				Strava: StravaConfig{
					ClientID:     "12345",
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
		},
		{
			name: "placeholder hevy key",
			config: Config{
				Hevy: HevyConfig{APIKey: "YOUR_HEVY_API_KEY"},
				Strava: StravaConfig{
					ClientID:     "12345",
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
		},
		{
			name: "empty strava client ID",
			config: Config{
				Hevy: HevyConfig{APIKey: "hevy-key-123"},
				Strava: StravaConfig{
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
		},
		{
			name: "placeholder strava secret",
			config: Config{
				Hevy: HevyConfig{APIKey: "hevy-key-123"},
				Strava: StravaConfig{
					ClientID:     "12345",
					ClientSecret: "YOUR_CLIENT_SECRET",
				},
			},
			expectError: true,
		},
		{
			name: "negative window weeks",
			config: Config{
				Hevy: HevyConfig{APIKey: "hevy-key-123"},
				Strava: StravaConfig{
					ClientID:     "12345",
					ClientSecret: "abc123secret",
				},
				Analysis: AnalysisConfig{WindowWeeks: -1},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

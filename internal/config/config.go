// Package config defines service configuration and its loading.
//
// Conventions:
// - New() returns a Config filled with defaults.
// - Load layers a .env file, a YAML file and environment variables on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"strings"
)

// Nearest distance modes.
const (
	NearestLinear   = "linear"
	NearestCircular = "circular"
)

// Supported locales.
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataPath is the race table (.csv, .html or .db).
	DataPath string `koanf:"data_path"`

	// PlaceholderYear builds the reference date of nearest-race queries.
	PlaceholderYear int `koanf:"placeholder_year"`

	// NearestMode is linear or circular.
	NearestMode string `koanf:"nearest_mode"`

	// Locale selects the language of sentences and reference tables.
	Locale string `koanf:"locale"`

	// LeaderboardSize is the default number of leaderboard rows.
	LeaderboardSize int `koanf:"leaderboard_size"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// SessionCapacity bounds stored quiz sessions; <= 0 means unbounded.
	SessionCapacity int `koanf:"session_capacity"`

	// SuggestionLimit caps drill-down suggestions.
	SuggestionLimit int `koanf:"suggestion_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		DataPath:            "F1_1950s_Race_Results_FULL.csv",
		PlaceholderYear:     1955,
		NearestMode:         NearestLinear,
		Locale:              LocaleES,
		LeaderboardSize:     5,
		MaxLeaderboardLimit: 100,
		SessionCapacity:     10_000,
		SuggestionLimit:     5,
	}
}

// Validate checks the values Load cannot fix up on its own.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	}
	switch c.NearestMode {
	case NearestLinear, NearestCircular:
	default:
		return fmt.Errorf("%w: nearest_mode %q, want %s or %s", ErrInvalidConfig, c.NearestMode, NearestLinear, NearestCircular)
	}
	switch c.Locale {
	case LocaleES, LocaleEN:
	default:
		return fmt.Errorf("%w: locale %q, want %s or %s", ErrInvalidConfig, c.Locale, LocaleES, LocaleEN)
	}
	if c.PlaceholderYear <= 0 {
		return fmt.Errorf("%w: placeholder_year must be positive", ErrInvalidConfig)
	}
	if c.LeaderboardSize <= 0 || c.MaxLeaderboardLimit <= 0 {
		return fmt.Errorf("%w: leaderboard sizes must be positive", ErrInvalidConfig)
	}
	return nil
}

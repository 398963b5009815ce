// Package config loads cadence settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/cadence/internal/logging"
	"github.com/abhisek/cadence/internal/projection"
	"github.com/abhisek/cadence/internal/spacedrep"
	"github.com/abhisek/cadence/internal/store"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `env:"CADENCE_DB"`

	LogLevel  string `env:"CADENCE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CADENCE_LOG_FORMAT" envDefault:"console"`

	// Profile is assigned to new decks that do not name one.
	Profile string `env:"CADENCE_PROFILE" envDefault:"lightspeed"`
	// ProfileDir holds custom YAML profiles loaded at startup.
	ProfileDir string `env:"CADENCE_PROFILE_DIR"`

	Lookahead int `env:"CADENCE_LOOKAHEAD" envDefault:"200"`
	Horizon   int `env:"CADENCE_HORIZON" envDefault:"200"`

	RolloverCron string `env:"CADENCE_ROLLOVER_CRON" envDefault:"@daily"`
	Timezone     string `env:"CADENCE_TZ" envDefault:"Local"`

	NoColor bool `env:"CADENCE_NO_COLOR"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "console",
		Profile:      "lightspeed",
		Lookahead:    projection.DefaultLookahead,
		Horizon:      spacedrep.DefaultHorizon,
		RolloverCron: "@daily",
		Timezone:     "Local",
	}
}

// Validate checks value ranges that the env tags cannot express.
func (c Config) Validate() error {
	if c.Lookahead < 0 {
		return fmt.Errorf("CADENCE_LOOKAHEAD must be >= 0, got %d", c.Lookahead)
	}
	if c.Horizon < 1 {
		return fmt.Errorf("CADENCE_HORIZON must be >= 1, got %d", c.Horizon)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("CADENCE_LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("CADENCE_TZ: %w", err)
	}
	return loc, nil
}

// ResolveDBPath returns DBPath, or the default XDG path when it is empty.
// The parent directory is created either way.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// Registry returns the built-in profiles plus any found in ProfileDir.
func (c Config) Registry() (*spacedrep.Registry, error) {
	r := spacedrep.NewRegistry()
	if c.ProfileDir == "" {
		return r, nil
	}
	if _, err := spacedrep.LoadProfileDir(r, c.ProfileDir); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return r, nil
}

// Package config provides centralized configuration loaded from environment
// variables, plus the collection names and sport registry shared by the
// seeders.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// --------------------------------------------------------------------------
// Sport registry — mirrors the app's SportType enum
// --------------------------------------------------------------------------

type SportConfig struct {
	ID   string
	Name string
	Icon string // SF Symbol name used by the app
}

var SportRegistry = map[string]SportConfig{
	"Soccer":     {ID: "Soccer", Name: "Soccer", Icon: "soccerball"},
	"Basketball": {ID: "Basketball", Name: "Basketball", Icon: "basketball"},
	"Hockey":     {ID: "Hockey", Name: "Ice Hockey", Icon: "hockey.puck"},
	"Tennis":     {ID: "Tennis", Name: "Tennis", Icon: "tennisball"},
	"Volleyball": {ID: "Volleyball", Name: "Volleyball", Icon: "volleyball"},
	"Padel":      {ID: "Padel", Name: "Padel", Icon: "figure.racquetball"},
	"Other":      {ID: "Other", Name: "Other", Icon: "sportscourt"},
}

// LookupSport reports whether sport is a registered category.
func LookupSport(sport string) (SportConfig, bool) {
	s, ok := SportRegistry[sport]
	return s, ok
}

// --------------------------------------------------------------------------
// Collection names — single source of truth for the Firestore layout
// --------------------------------------------------------------------------

const (
	LeaguesCollection       = "leagues"
	PendingVenuesCollection = "pending_venues"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Firestore
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE" envDefault:"serviceAccountKey.json"`
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	EmulatorHost    string `env:"FIRESTORE_EMULATOR_HOST"`

	// Batch commit pacing; zero means unlimited.
	CommitsPerSecond float64 `env:"SEED_COMMITS_PER_SECOND" envDefault:"0"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CommitsPerSecond < 0 {
		return nil, fmt.Errorf("SEED_COMMITS_PER_SECOND must not be negative, got %v", cfg.CommitsPerSecond)
	}
	return &cfg, nil
}

// UsesEmulator returns true when writes target the local Firestore emulator.
func (c *Config) UsesEmulator() bool {
	return c.EmulatorHost != ""
}

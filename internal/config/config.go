// Package config assembles the run configuration: built-in defaults,
// overlaid by an optional JSON file, overlaid by environment variables.
package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/infblueocean/marketpulse/internal/feed"
	"github.com/infblueocean/marketpulse/internal/score"
)

// Backend names for the seen-item store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the full run configuration.
type Config struct {
	// WebhookURL comes only from the DISCORD_WEBHOOK environment
	// variable; it is a secret and never read from the config file.
	WebhookURL string `json:"-"`

	Feeds    []feed.Config  `json:"feeds"`
	Taxonomy score.Taxonomy `json:"taxonomy"`
	Weights  score.Weights  `json:"weights"`

	// MaxPerFeed caps how many most-recent entries each feed fetch
	// considers.
	MaxPerFeed int `json:"max_per_feed"`

	// SendBudget caps how many alerts one run may deliver.
	SendBudget int `json:"send_budget"`

	// RetentionHours is the seen-store rolling retention window.
	RetentionHours int `json:"retention_hours"`

	StatePath    string `json:"state_path"`
	StateBackend string `json:"state_backend"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Feeds:          feed.DefaultFeeds,
		Taxonomy:       score.DefaultTaxonomy(),
		Weights:        score.DefaultWeights(),
		MaxPerFeed:     15,
		SendBudget:     5,
		RetentionHours: 48,
		StatePath:      "seen_news.json",
		StateBackend:   BackendFile,
	}
}

// Load builds the effective configuration. The optional JSON file at
// MARKETPULSE_CONFIG (default marketpulse.json) overrides defaults
// field by field; a missing or malformed file just means defaults.
// Environment variables win last.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("MARKETPULSE_CONFIG")
	if path == "" {
		path = "marketpulse.json"
	}
	if data, err := os.ReadFile(path); err == nil {
		// Unmarshal over the defaults so absent fields keep them.
		// A malformed file falls back to pure defaults.
		if err := json.Unmarshal(data, cfg); err != nil {
			cfg = Default()
		}
	}

	cfg.WebhookURL = os.Getenv("DISCORD_WEBHOOK")
	if v := os.Getenv("MARKETPULSE_STATE"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("MARKETPULSE_STATE_BACKEND"); v != "" {
		cfg.StateBackend = v
	}

	return cfg, nil
}

// Retention returns the seen-store retention window.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionHours) * time.Hour
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config is the complete tradebook configuration.
type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	Account  AccountConfig  `json:"account" yaml:"account"`
	Import   ImportConfig   `json:"import" yaml:"import"`
}

// DatabaseConfig locates the journal store.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path" env:"TRADEBOOK_DB"`
}

// AccountConfig identifies the owning user for user-scoped operations.
type AccountConfig struct {
	User string `json:"user" yaml:"user" env:"TRADEBOOK_USER"`
}

// ImportConfig controls statement imports.
type ImportConfig struct {
	// Timezone interprets the statement's naive timestamps. "Local" or an
	// IANA name like "America/New_York".
	Timezone string `json:"timezone" yaml:"timezone" env:"TRADEBOOK_TZ"`
	// Atomic wraps the whole import batch in one transaction.
	Atomic bool `json:"atomic" yaml:"atomic" env:"TRADEBOOK_ATOMIC"`
}

// Location resolves the configured import timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Import.Timezone == "" || strings.EqualFold(c.Import.Timezone, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Import.Timezone)
}

// Load reads configuration from an optional file (YAML or JSON), applies
// environment overrides, and validates the result. An empty path yields the
// defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// Try YAML first, fall back to JSON.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			if jerr := json.Unmarshal(data, cfg); jerr != nil {
				return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Account.User == "" {
		return fmt.Errorf("account.user is required")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("unknown import.timezone %q", c.Import.Timezone)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./tradebook.sqlite"},
		Account:  AccountConfig{User: "trader"},
		Import:   ImportConfig{Timezone: "Local"},
	}
}

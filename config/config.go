// Package config loads journal settings from a YAML or JSON file with
// environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the journal-wide settings.
type Config struct {
	DBPath         string  `json:"db_path" yaml:"db_path"`
	User           string  `json:"user" yaml:"user"`
	DefaultBalance float64 `json:"default_balance" yaml:"default_balance"`
	DefaultSize    float64 `json:"default_size" yaml:"default_size"`
	RiskPercent    float64 `json:"risk_percent" yaml:"risk_percent"`
}

// Default returns the out-of-the-box configuration.
func Default() *Config {
	return &Config{
		DBPath:         "./fxjournal.db",
		DefaultBalance: 10000,
		DefaultSize:    0.1,
		RiskPercent:    1,
	}
}

// LoadFromFile reads a config file, YAML first with a JSON fallback, and
// validates it. Missing numeric fields fall back to defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// FromEnv layers .env and process-environment overrides onto cfg.
// Recognized variables: FXJOURNAL_DB, FXJOURNAL_USER, FXJOURNAL_BALANCE.
func (c *Config) FromEnv() error {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("FXJOURNAL_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("FXJOURNAL_USER"); v != "" {
		c.User = strings.TrimSpace(v)
	}
	if v := os.Getenv("FXJOURNAL_BALANCE"); v != "" {
		bal, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FXJOURNAL_BALANCE: %w", err)
		}
		c.DefaultBalance = bal
	}
	return c.Validate()
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.DefaultBalance <= 0 {
		return fmt.Errorf("default_balance must be positive")
	}
	if c.DefaultSize <= 0 {
		return fmt.Errorf("default_size must be positive")
	}
	if c.RiskPercent <= 0 || c.RiskPercent > 100 {
		return fmt.Errorf("risk_percent must be between 0 and 100")
	}
	return nil
}

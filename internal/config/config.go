// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anton/hh-resume-extractor/internal/fetch"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Extraction
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Page fetch bound
	UserAgent      string `json:"user_agent,omitempty"`      // Request identity
	AcceptLanguage string `json:"accept_language,omitempty"` // Request language headers
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Render pages in headless Chrome
	Concurrency    int    `json:"concurrency,omitempty"`     // Parallel URL extractions in the CLI
	RawDir         string `json:"raw_dir,omitempty"`         // Opt-in directory for raw page dumps

	// Server
	Port        int    `json:"port,omitempty"`         // REST API listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	if c.RawDir != "" {
		if info, err := os.Stat(c.RawDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: raw dir not found: %s", c.RawDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.AcceptLanguage == "" {
		result.AcceptLanguage = defaults.AcceptLanguage
	}
	if result.RawDir == "" {
		result.RawDir = defaults.RawDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchOptions translates the configuration into fetch options, falling
// back to the package defaults for anything unset.
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if c.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	if c.UserAgent != "" {
		opts.UserAgent = c.UserAgent
	}
	if c.AcceptLanguage != "" {
		opts.AcceptLanguage = c.AcceptLanguage
	}
	return opts
}

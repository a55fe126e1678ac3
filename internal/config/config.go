// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "RESUME_MATCHER_LOG_LEVEL"
	EnvLogFormat   = "RESUME_MATCHER_LOG_FORMAT"
	EnvPresentYear = "RESUME_MATCHER_PRESENT_YEAR"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Analysis
	PresentYear int    `json:"present_year,omitempty"` // Year that "present" date ranges end in
	LexiconPath string `json:"lexicon_path,omitempty"` // Replacement lexicon JSON file

	// Matching
	MatchConcurrency int    `json:"match_concurrency,omitempty"` // Resumes scored in parallel
	DatabaseURL      string `json:"database_url,omitempty"`      // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or pretty
	Verbose   bool   `json:"verbose,omitempty"`    // Print human-readable summaries
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		PresentYear:      2025,
		MatchConcurrency: 4,
		LogLevel:         "info",
		LogFormat:        "json",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	if c.PresentYear < 0 {
		return fmt.Errorf("config error: 'present_year' must be non-negative")
	}
	if c.MatchConcurrency < 0 {
		return fmt.Errorf("config error: 'match_concurrency' must be non-negative")
	}

	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or pretty, got %q", c.LogFormat)
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// ApplyEnv overrides fields from the environment. Unset variables leave
// the field alone; a malformed year is an error.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvPresentYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s: %w", EnvPresentYear, err)
		}
		c.PresentYear = year
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.PresentYear == 0 {
		result.PresentYear = defaults.PresentYear
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.MatchConcurrency == 0 {
		result.MatchConcurrency = defaults.MatchConcurrency
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

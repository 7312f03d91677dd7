package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all textreport configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls diagnostics on stderr. It never affects the report.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, text
	DebugMode  bool            `yaml:"debug_mode"` // false = no logging
	Categories map[string]bool `yaml:"categories"` // per-category toggles, unlisted = on
}

// IsCategoryEnabled reports whether a category logs. Nothing logs outside
// debug mode; in debug mode a nil map or an unlisted category means on.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	enabled, exists := c.Categories[category]
	return !exists || enabled
}

// ErrInvalidLevel is returned by Validate for an unknown log level.
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat is returned by Validate for an unknown log format.
var ErrInvalidFormat = errors.New("invalid log format")

// ValidLevels lists the accepted logging.level values.
var ValidLevels = []string{"debug", "info", "warn", "warning", "error"}

// ValidFormats lists the accepted logging.format values.
var ValidFormats = []string{"json", "text"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "textreport",
		Version: "1.0.0",
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults with env overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// save writes the configuration as YAML, creating parent directories.
func (c *Config) save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("TEXTREPORT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TEXTREPORT_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if debug := os.Getenv("TEXTREPORT_DEBUG"); debug != "" {
		// Unparseable values leave the file setting alone
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidLevel, c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidFormat, c.Logging.Format, ValidFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete bsi-agent configuration.
type Config struct {
	Version string `toml:"version"`

	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Dev server configuration
	Server ServerConfig `toml:"server"`
}

// BackendConfig contains the question-answering backend settings.
type BackendConfig struct {
	// URL is the endpoint the client POSTs exchanges to.
	URL string `toml:"url"`
	// TimeoutSecs is the per-exchange timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
}

// Timeout returns the exchange timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSecs) * time.Second
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is the color theme: "auto", "dark", "light"
	Theme string `toml:"theme"`
	// ShowTimestamps shows message timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps"`
	// CompactMode reduces message padding
	CompactMode bool `toml:"compact_mode"`
}

// ServerConfig contains settings for the built-in development server.
type ServerConfig struct {
	// Addr is the listen address for `bsi-agent serve`.
	Addr string `toml:"addr"`
	// RatePerSec caps accepted exchanges per second (0 = unlimited).
	RatePerSec float64 `toml:"rate_per_sec"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Backend: BackendConfig{
			URL:         "http://localhost:8080/ask",
			TimeoutSecs: 30,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: false,
			CompactMode:    false,
		},
		Server: ServerConfig{
			Addr:       "localhost:8080",
			RatePerSec: 5,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the bsi-agent configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".bsi-agent"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads configuration from the default location, falling back to
// built-in defaults when no file exists. Environment overrides are applied
// last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default location.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file, creating the target
// directory if needed.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors aggregates all validation failures.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Backend.URL == "" {
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: "must not be empty",
		})
	} else {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "backend.url",
				Message: fmt.Sprintf("invalid URL '%s'", c.Backend.URL),
			})
		}
	}

	if c.Backend.TimeoutSecs <= 0 {
		errs = append(errs, ValidationError{
			Field:   "backend.timeout_secs",
			Message: "must be positive",
		})
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.Server.RatePerSec < 0 {
		errs = append(errs, ValidationError{
			Field:   "server.rate_per_sec",
			Message: "cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - BSI_AGENT_URL: overrides backend.url
//   - BSI_AGENT_TIMEOUT_SECS: overrides backend.timeout_secs
//   - BSI_AGENT_THEME: overrides ui.theme
//   - BSI_AGENT_COMPACT: set to "1" or "true" to enable compact mode
//   - BSI_AGENT_ADDR: overrides server.addr
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("BSI_AGENT_URL"); u != "" {
		c.Backend.URL = u
	}

	if secs := os.Getenv("BSI_AGENT_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.Backend.TimeoutSecs = n
		}
	}

	if theme := os.Getenv("BSI_AGENT_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if compact := os.Getenv("BSI_AGENT_COMPACT"); compact != "" {
		c.UI.CompactMode = compact == "1" || strings.ToLower(compact) == "true"
	}

	if addr := os.Getenv("BSI_AGENT_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

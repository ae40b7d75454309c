// Package config resolves runtime settings from defaults, an optional YAML
// file and CONCIERGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/alexanderramin/concierge/internal/generation"
	"gopkg.in/yaml.v3"
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	DBPath      string `yaml:"db,omitempty"`
	CatalogDir  string `yaml:"catalog,omitempty"`
	Delimiter   string `yaml:"delimiter,omitempty"`
	LogFormat   string `yaml:"log_format,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogUseCases bool   `yaml:"log_use_cases,omitempty"`

	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults are the configured fallbacks for generate requests.
type Defaults struct {
	City      string  `yaml:"city,omitempty"`
	Duration  *int    `yaml:"duration,omitempty"`
	Intensity string  `yaml:"intensity,omitempty"`
	Guests    *int    `yaml:"guests,omitempty"`
	Seed      *uint64 `yaml:"seed,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured. Paths
// live under home/.concierge.
func DefaultConfig(home string) Config {
	base := filepath.Join(home, ".concierge")
	return Config{
		DBPath:     filepath.Join(base, "concierge.db"),
		CatalogDir: filepath.Join(base, "catalog"),
		LogFormat:  "text",
		LogLevel:   "warn",
	}
}

// Path returns the config file location: CONCIERGE_CONFIG, or
// ~/.concierge/config.yaml.
func Path() (string, error) {
	if v := os.Getenv("CONCIERGE_CONFIG"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".concierge", "config.yaml"), nil
}

// Load builds the effective configuration. A missing config file is not an
// error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := DefaultConfig(home)

	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	if cfg.Delimiter != "" && utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return Config{}, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current value.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with the set environment variables. Values that do
// not parse are ignored.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CONCIERGE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CONCIERGE_CATALOG"); v != "" {
		cfg.CatalogDir = v
	}
	if v := os.Getenv("CONCIERGE_DELIMITER"); v != "" {
		cfg.Delimiter = v
	}
	if v := os.Getenv("CONCIERGE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CONCIERGE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CONCIERGE_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("CONCIERGE_DEFAULT_CITY"); v != "" {
		cfg.Defaults.City = v
	}
	if v := os.Getenv("CONCIERGE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Defaults.Seed = &n
		}
	}
}

// DelimiterRune returns the forced catalog delimiter, or 0 to sniff it.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// RequestDefaults converts the configured fallbacks for the generator.
func (c Config) RequestDefaults() generation.RequestDefaults {
	return generation.RequestDefaults{
		City:      c.Defaults.City,
		Duration:  c.Defaults.Duration,
		Intensity: c.Defaults.Intensity,
		Guests:    c.Defaults.Guests,
		Seed:      c.Defaults.Seed,
	}
}

// Package config provides configuration for the perftree CLI.
// Values are resolved with the following precedence:
// built-in defaults → config file → env vars
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/perftree/perftree/internal/report"
)

// Config holds report settings shared by the CLI commands. The measurement
// core never reads configuration; these only shape the rendered output.
type Config struct {
	Style    string `yaml:"style"`    // one of the built-in style names
	Decimals int    `yaml:"decimals"` // fractional digits in the ms/loop column
	Color    bool   `yaml:"color"`    // colorize reports
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{Style: report.Streamlined.Name}
}

// DefaultConfigDir returns the global config directory
// (~/.config/perftree, or $XDG_CONFIG_HOME/perftree when set).
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "perftree")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".perftree"
	}
	return filepath.Join(home, ".config", "perftree")
}

// Load loads configuration from the default directory.
func Load() (Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir loads configuration with an explicit config directory. A
// missing config.yaml is not an error; defaults and env vars still apply.
func LoadWithDir(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fine, defaults only
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if _, ok := report.StyleByName(cfg.Style); !ok {
		return cfg, fmt.Errorf("unknown style %q", cfg.Style)
	}
	if cfg.Decimals < 0 {
		return cfg, fmt.Errorf("decimals must be >= 0, got %d", cfg.Decimals)
	}
	return cfg, nil
}

// applyEnv overrides cfg fields from PERFTREE_* env vars.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PERFTREE_STYLE"); v != "" {
		cfg.Style = v
	}
	if v := os.Getenv("PERFTREE_DECIMALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Decimals = n
		}
	}
	if v := os.Getenv("PERFTREE_COLOR"); v != "" {
		cfg.Color = v == "1" || v == "true"
	}
}

// ReportOptions resolves the config into render options.
func (c Config) ReportOptions() report.Options {
	style, ok := report.StyleByName(c.Style)
	if !ok {
		style = report.Streamlined
	}
	return report.Options{Style: style, Decimals: c.Decimals, Color: c.Color}
}

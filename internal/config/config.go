// Package config provides configuration management for texargs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/texargs/internal/view"
	"github.com/open-cli-collective/texargs/pkg/texargs"
)

// Config holds the texargs configuration.
type Config struct {
	OutputFormat   string         `yaml:"output_format,omitempty"`
	IncludeUnknown bool           `yaml:"include_unknown,omitempty"`
	UnknownArity   int            `yaml:"unknown_arity,omitempty"`
	Arity          map[string]int `yaml:"arity,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}

	if c.UnknownArity < 0 {
		return errors.New("unknown_arity must not be negative")
	}

	for name, n := range c.Arity {
		if name == "" {
			return errors.New("arity entries need a macro name")
		}
		if n < 0 {
			return fmt.Errorf("arity for %q must not be negative", name)
		}
	}

	return nil
}

// ArityTable returns the built-in arity table with the configured overrides applied.
func (c *Config) ArityTable() texargs.ArityTable {
	return texargs.DefaultArity().Merge(c.Arity)
}

// SetArity records an arity override for name.
func (c *Config) SetArity(name string, n int) {
	if c.Arity == nil {
		c.Arity = make(map[string]int)
	}
	c.Arity[strings.TrimPrefix(name, `\`)] = n
}

// UnsetArity removes an override. It reports whether one existed.
func (c *Config) UnsetArity(name string) bool {
	name = strings.TrimPrefix(name, `\`)
	if _, ok := c.Arity[name]; !ok {
		return false
	}
	delete(c.Arity, name)
	return true
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("TEXARGS_OUTPUT"); format != "" {
		c.OutputFormat = format
	}
	if v := os.Getenv("TEXARGS_INCLUDE_UNKNOWN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.IncludeUnknown = b
		}
	}
	if v := os.Getenv("TEXARGS_UNKNOWN_ARITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UnknownArity = n
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "texargs", "config.yml")
	}

	// Fall back to ~/.config/texargs/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".texargs", "config.yml")
	}

	return filepath.Join(home, ".config", "texargs", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadOrEmpty reads the configuration at path. A missing file yields an empty
// config; any other read or parse error is returned.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := LoadOrEmpty(path)
	if err != nil {
		return nil, err
	}

	cfg.LoadFromEnv()
	return cfg, nil
}

// Resolve loads the config at path (DefaultConfigPath when empty), applies
// environment overrides and validates the result.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadWithEnv(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

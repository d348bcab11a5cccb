// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Link mode names accepted in configuration.
const (
	LinkModeDefault          = "default"
	LinkModeUnresolvedStatic = "unresolved-static"
)

// Config holds pyconfig configuration
type Config struct {
	Python          string `yaml:"python"`           // requested version, e.g. "3" or "3.9"
	Interpreter     string `yaml:"interpreter"`      // explicit interpreter path
	LinkMode        string `yaml:"link_mode"`        // "default" or "unresolved-static"
	ExtensionModule bool   `yaml:"extension_module"` // building an embeddable extension
	LimitedAPI      bool   `yaml:"limited_api"`      // opt in to the stable ABI flag
	Debug           bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "pyconfig", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "pyconfig", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.LinkMode {
	case "", LinkModeDefault, LinkModeUnresolvedStatic:
		return nil
	default:
		return fmt.Errorf("invalid link_mode %q (want %q or %q)",
			c.LinkMode, LinkModeDefault, LinkModeUnresolvedStatic)
	}
}

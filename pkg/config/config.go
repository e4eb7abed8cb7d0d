// Package config loads user defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults applied before command-line flags.
type Config struct {
	// BaseURL is the default base for resolving relative hrefs.
	BaseURL string `yaml:"base_url"`
	// TopBases is the default N for ranked base-URL detection.
	TopBases int `yaml:"top_bases"`
	// Locale selects the collation used for sorting, e.g. "en" or "da".
	Locale string `yaml:"locale"`
	// Dedupe enables deduplication by default.
	Dedupe bool `yaml:"dedupe"`
	// SkipSchemes overrides the built-in list of ignored href prefixes.
	SkipSchemes []string `yaml:"skip_schemes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TopBases: 10,
	}
}

// DefaultPath returns the standard config location,
// ~/.linkscrape/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".linkscrape", "config.yaml")
}

// Load reads the config at path, filling unset fields with defaults. A
// missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TopBases <= 0 {
		cfg.TopBases = Default().TopBases
	}
	return cfg, nil
}

// Package config defines the mdlinkcheck configuration file model.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filenames probed in the working directory, in order, when no explicit
// config path is given.
var discoveryNames = []string{".mdlinkcheck.yml", ".mdlinkcheck.yaml"}

// Config holds the file-configurable settings. CLI flags override any
// value set here.
type Config struct {
	// Extensions are the file extensions treated as Markdown during
	// directory expansion (lowercase, leading dot).
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore lists glob patterns excluded during directory expansion.
	Ignore []string `yaml:"ignore,omitempty"`

	// Color controls output styling: auto, always, or never.
	Color string `yaml:"color,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extensions: []string{".md", ".markdown"},
		Color:      "auto",
	}
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Load resolves the effective configuration. An explicit path must
// exist; otherwise the working directory is probed for the well-known
// filenames and defaults are used when none is present.
func Load(workDir, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = discover(workDir)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return Default().Merge(cfg), nil
}

// discover returns the first well-known config file under workDir, or
// empty when none exists.
func discover(workDir string) string {
	for _, name := range discoveryNames {
		candidate := filepath.Join(workDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Merge overlays the non-zero fields of other onto a copy of c.
func (c *Config) Merge(other *Config) *Config {
	merged := *c
	if len(other.Extensions) > 0 {
		merged.Extensions = other.Extensions
	}
	if len(other.Ignore) > 0 {
		merged.Ignore = other.Ignore
	}
	if other.Color != "" {
		merged.Color = other.Color
	}
	return &merged
}

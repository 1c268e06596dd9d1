// Package config provides configuration management for the plugin builder:
// the optional pbuild.yaml project file and the JSON documents the build reads.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/plugin-builder/configs"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project file name looked up in the project directory.
const DefaultConfigFile = "pbuild.yaml"

// Config represents the project build settings.
type Config struct {
	EntryPoints []string    `yaml:"entry_points"`
	Outfile     string      `yaml:"outfile"`
	Format      string      `yaml:"format"`
	TSConfig    string      `yaml:"tsconfig"`
	Manifest    string      `yaml:"manifest"`
	LogLevel    string      `yaml:"log_level"`
	External    []string    `yaml:"external"`
	Hooks       HooksConfig `yaml:"hooks"`
}

// HooksConfig controls the optional developer hooks module.
type HooksConfig struct {
	Path         string `yaml:"path"`
	Logs         bool   `yaml:"logs"`
	RebuildHooks bool   `yaml:"rebuild_hooks"`
	WatchModule  bool   `yaml:"watch_module"`
}

// DefaultConfig returns the configuration embedded in the binary.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default configuration is invalid: %v", err))
	}
	return cfg
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if len(c.EntryPoints) == 0 {
		return ErrNoEntryPoints
	}
	for _, e := range c.EntryPoints {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("%w: blank entry point", ErrNoEntryPoints)
		}
	}
	if strings.TrimSpace(c.Outfile) == "" {
		return ErrOutfileEmpty
	}
	if strings.TrimSpace(c.Hooks.Path) == "" {
		return ErrHooksPathEmpty
	}
	return nil
}

// Resolve returns p joined to projectDir unless p is already absolute.
func Resolve(projectDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectDir, p)
}

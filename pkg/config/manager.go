package config

import (
	"fmt"

	"github.com/lerenn/plugin-builder/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads pbuild.yaml, falling back to the defaults when it does not exist.
	GetConfig() (Config, error)
	// GetConfigPath returns the path of the project file.
	GetConfigPath() string
	// LoadTSConfig reads the compiler settings document.
	LoadTSConfig(path string) (TSConfig, error)
	// LoadManifest reads and validates the plugin manifest.
	LoadManifest(path string) (Manifest, error)
}

type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsys fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsys,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Values present in the file override the defaults field by field.
func (c *realManager) GetConfig() (Config, error) {
	config := DefaultConfig()

	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if exists {
		data, err := c.fs.ReadFile(c.configPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// GetConfigPath returns the path of the project file.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// LoadTSConfig reads tsconfig.json. An absent target is left empty.
func (c *realManager) LoadTSConfig(path string) (TSConfig, error) {
	var ts TSConfig
	if err := ReadJSON(c.fs, path, &ts); err != nil {
		return TSConfig{}, err
	}
	return ts, nil
}

// LoadManifest reads manifest.json and checks its required fields.
func (c *realManager) LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if err := ReadJSON(c.fs, path, &m); err != nil {
		return Manifest{}, err
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

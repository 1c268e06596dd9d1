// Package dependencies provides a centralized dependency container for the plugin builder.
// Related collaborators are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/config"
	"github.com/lerenn/plugin-builder/pkg/devhooks"
	"github.com/lerenn/plugin-builder/pkg/fs"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrEngineMissing = errors.New("bundler engine dependency is required but not set")
	ErrLoaderMissing = errors.New("hooks loader dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	Logger logger.Logger
	Engine bundler.Engine
	Loader *devhooks.Loader
}

// New creates a new Dependencies instance with sensible defaults.
// Config and Loader depend on the project directory and are set with With* methods.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		Engine: bundler.NewEsbuildEngine(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithEngine sets the bundler engine and returns the instance for chaining.
func (d *Dependencies) WithEngine(engine bundler.Engine) *Dependencies {
	d.Engine = engine
	return d
}

// WithLoader sets the hooks loader and returns the instance for chaining.
func (d *Dependencies) WithLoader(loader *devhooks.Loader) *Dependencies {
	d.Loader = loader
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Engine == nil, ErrEngineMissing},
		{d.Loader == nil, ErrLoaderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}

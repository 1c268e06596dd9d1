package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/config"
	"github.com/lerenn/plugin-builder/pkg/dependencies"
	"github.com/lerenn/plugin-builder/pkg/devhooks"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// project is the resolved state shared by the commands.
type project struct {
	dir  string
	deps *dependencies.Dependencies
	cfg  config.Config
}

// newLogger picks the CLI log level: --quiet and --verbose win over the
// project's log_level.
func newLogger(configured string) (logger.Logger, error) {
	level, err := logger.ParseLevel(configured)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	switch {
	case quiet:
		level = logger.LevelError
	case verbose:
		level = logger.LevelDebug
	}
	return logger.NewLogger(os.Stderr, level), nil
}

// loadProject resolves the project directory and reads its settings file.
func loadProject() (*project, error) {
	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	path := configPath
	if path == "" {
		path = config.DefaultConfigFile
	}
	path = config.Resolve(dir, path)

	deps := dependencies.New()
	deps.WithConfig(config.NewManager(deps.FS, path))
	cfg, err := deps.Config.GetConfig()
	if err != nil {
		return nil, err
	}

	l, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	deps.WithLogger(l).WithLoader(devhooks.NewLoader(deps.FS, l))
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	if hooksPath != "" {
		cfg.Hooks.Path = hooksPath
	}
	return &project{dir: dir, deps: deps, cfg: cfg}, nil
}

func (p *project) path(rel string) string {
	return config.Resolve(p.dir, rel)
}

func (p *project) hooksModule() string {
	return p.path(p.cfg.Hooks.Path)
}

// loadDotEnv loads <dir>/.env without overriding variables already set.
func (p *project) loadDotEnv() error {
	envFile := p.path(".env")
	if err := godotenv.Load(envFile); err != nil {
		if p.deps.FS.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// resolveMode picks the build mode from the argument, then the environment.
func resolveMode(args []string, getenv func(string) string) bundler.Mode {
	if len(args) > 0 {
		return bundler.ParseMode(args[0])
	}
	return bundler.ParseMode(getenv(modeEnv))
}

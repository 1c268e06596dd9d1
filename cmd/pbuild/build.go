package main

import (
	"context"
	"os"

	"github.com/lerenn/plugin-builder/pkg/orchestrator"
)

func runBuild(ctx context.Context, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	if err := p.loadDotEnv(); err != nil {
		return err
	}
	mode := resolveMode(args, os.Getenv)

	// The hooks module is loaded before any bundler configuration exists,
	// so a broken module aborts the build up front.
	proxy, err := p.deps.Loader.Open(p.hooksModule(), p.cfg.Hooks.Logs && !noHookLogs)
	if err != nil {
		return err
	}

	ts, err := p.deps.Config.LoadTSConfig(p.path(p.cfg.TSConfig))
	if err != nil {
		return err
	}
	manifest, err := p.deps.Config.LoadManifest(p.path(p.cfg.Manifest))
	if err != nil {
		return err
	}

	opts := orchestrator.Configure(orchestrator.Sources{
		Project:    p.cfg,
		TSConfig:   ts,
		Manifest:   manifest,
		ProjectDir: p.dir,
	}, mode)

	params := orchestrator.Params{
		Engine:       p.deps.Engine,
		Hooks:        proxy,
		Logger:       p.deps.Logger,
		RebuildHooks: p.cfg.Hooks.RebuildHooks,
	}
	if p.cfg.Hooks.WatchModule && proxy.Loaded() {
		params.ModulePath = p.hooksModule()
	}
	orch, err := orchestrator.New(params)
	if err != nil {
		return err
	}

	outcome, err := orch.Run(ctx, opts, mode)
	if err != nil {
		return err
	}
	p.deps.Logger.Debugf("Finished %s build in %s", outcome.Mode, outcome.Duration)
	return nil
}

// Package orchestrator sequences a plugin build and lets the developer hooks
// intervene at each lifecycle stage.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/hooks"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// Stage is a lifecycle stage of a build invocation.
type Stage string

// Lifecycle stages, in order.
const (
	StageConfigure  Stage = "configure"
	StageInitialize Stage = "initialize"
	StagePreBuild   Stage = "pre-build"
	StageBuild      Stage = "build"
	StagePostBuild  Stage = "post-build"

	// Stages of a watch rebuild observed through the rebuild hooks.
	StageRebuildPre  Stage = "rebuild pre-build"
	StageRebuildPost Stage = "rebuild post-build"
)

// Params contains parameters for creating a new Orchestrator.
type Params struct {
	Engine bundler.Engine
	Hooks  *hooks.Proxy
	Logger logger.Logger

	// RebuildHooks re-runs the pre- and post-build hooks around every watch
	// rebuild that happens while the session is held open.
	RebuildHooks bool

	// ModulePath, when set, is watched during a watch session and changes
	// to it are reported.
	ModulePath string
}

// Outcome describes a completed invocation.
type Outcome struct {
	Mode bundler.Mode
	// Options is the configuration handed to the engine, after the hooks ran.
	Options *bundler.Options
	// Result is what the build stage produced: the onBuild return value,
	// a *bundler.Result or a *bundler.WatchSession.
	Result    any
	Delegated bool
	Watched   bool
	Duration  time.Duration
}

// Orchestrator drives Configure, Initialize, Pre-build, Build and Post-build.
type Orchestrator struct {
	engine       bundler.Engine
	hooks        *hooks.Proxy
	logger       logger.Logger
	rebuildHooks bool
	modulePath   string
}

// New creates a new Orchestrator.
func New(params Params) (*Orchestrator, error) {
	if params.Engine == nil {
		return nil, ErrEngineMissing
	}
	if params.Hooks == nil {
		return nil, ErrHooksMissing
	}
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	return &Orchestrator{
		engine:       params.Engine,
		hooks:        params.Hooks,
		logger:       params.Logger,
		rebuildHooks: params.RebuildHooks,
		modulePath:   params.ModulePath,
	}, nil
}

// Run executes one build invocation over opts.
// opts is mutated in place by the configuration hook and the same value is
// handed to the engine. In a development watch session Run returns once ctx
// is cancelled or a rebuild hook fails.
func (o *Orchestrator) Run(ctx context.Context, opts *bundler.Options, mode bundler.Mode) (Outcome, error) {
	start := time.Now()
	outcome := Outcome{Mode: mode, Options: opts}
	o.logger.Logf("! Building in %s mode.", mode)

	// Configure
	if err := o.hooks.Config(opts, mode); err != nil {
		return outcome, &StageError{Stage: StageConfigure, Err: err}
	}

	// Initialize
	var observer *rebuildObserver
	var engineObserver bundler.RebuildObserver
	if o.rebuildHooks {
		observer = newRebuildObserver(o.hooks, mode, o.logger)
		engineObserver = observer
	}
	bctx, err := o.engine.Context(opts, engineObserver)
	if err != nil {
		return outcome, &StageError{Stage: StageInitialize, Err: &ConfigurationError{Err: err}}
	}
	defer bctx.Dispose()
	if observer != nil {
		observer.bind(bctx)
	}

	// Pre-build
	if err := o.hooks.PreBuild(bctx, mode); err != nil {
		return outcome, &StageError{Stage: StagePreBuild, Err: err}
	}

	// Build
	result, delegated, err := o.build(bctx, mode)
	outcome.Result, outcome.Delegated = result, delegated
	if err != nil {
		return outcome, &StageError{Stage: StageBuild, Err: err}
	}

	// Post-build
	if err := o.hooks.PostBuild(bctx, result, mode); err != nil {
		return outcome, &StageError{Stage: StagePostBuild, Err: err}
	}

	if bctx.Watching() {
		outcome.Watched = true
		err = o.hold(ctx, observer)
	}
	outcome.Duration = time.Since(start)
	return outcome, err
}

func (o *Orchestrator) build(bctx bundler.Context, mode bundler.Mode) (any, bool, error) {
	if o.hooks.Has(hooks.BuildHook) {
		result, err := o.hooks.Build(bctx, mode)
		return result, true, err
	}

	if mode.IsProduction() {
		res, err := bctx.Rebuild()
		if err != nil {
			return res, false, err
		}
		o.logger.Debugf("Build completed in %s", res.Duration)
		return res, false, nil
	}

	session, err := bctx.Watch()
	if err != nil {
		return nil, false, err
	}
	return session, false, nil
}

// hold keeps a watch session open until ctx is done or a rebuild hook fails.
func (o *Orchestrator) hold(ctx context.Context, observer *rebuildObserver) error {
	if o.modulePath != "" {
		mw, err := watchModule(ctx, o.modulePath, o.logger)
		if err != nil {
			o.logger.Warnf("not watching hooks module: %v", err)
		} else {
			defer mw.Close()
		}
	}

	var hookErrs <-chan error
	if observer != nil {
		observer.start()
		defer observer.stop()
		hookErrs = observer.Errors()
	}

	o.logger.Logf("Watching for changes, interrupt to stop")
	select {
	case <-ctx.Done():
		o.logger.Debugf("Watch session ended: %v", context.Cause(ctx))
		return nil
	case err := <-hookErrs:
		return fmt.Errorf("watch session aborted: %w", err)
	}
}

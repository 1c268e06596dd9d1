package orchestrator

import (
	"sync"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/hooks"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// rebuildObserver runs the pre- and post-build hooks around watch rebuilds.
// It stays closed until the orchestrator holds the watch session open, so the
// initial build and any build driven by an onBuild hook are not observed.
// Hooks run without mu held; builds a hook starts itself are not observed.
type rebuildObserver struct {
	hooks  *hooks.Proxy
	mode   bundler.Mode
	logger logger.Logger

	mu      sync.Mutex
	ctx     bundler.Context
	open    bool
	running bool
	inHook  bool
	errs    chan error
}

func newRebuildObserver(proxy *hooks.Proxy, mode bundler.Mode, l logger.Logger) *rebuildObserver {
	return &rebuildObserver{
		hooks:  proxy,
		mode:   mode,
		logger: l,
		errs:   make(chan error, 1),
	}
}

func (o *rebuildObserver) bind(ctx bundler.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ctx = ctx
}

func (o *rebuildObserver) start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = true
}

func (o *rebuildObserver) stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open = false
}

// Errors delivers the first hook failure seen during a rebuild.
func (o *rebuildObserver) Errors() <-chan error {
	return o.errs
}

// RebuildStarted runs the pre-build hook for an observed rebuild.
func (o *rebuildObserver) RebuildStarted() error {
	o.mu.Lock()
	if o.inHook {
		o.mu.Unlock()
		return nil
	}
	o.running = false
	if !o.open || o.ctx == nil {
		o.mu.Unlock()
		return nil
	}
	o.inHook = true
	ctx := o.ctx
	o.mu.Unlock()

	o.logger.Debugf("Rebuild started, running %s", hooks.PreBuildHook)
	err := o.hooks.PreBuild(ctx, o.mode)

	o.mu.Lock()
	o.inHook = false
	o.running = err == nil
	o.mu.Unlock()

	if err != nil {
		return o.fail(StageRebuildPre, err)
	}
	return nil
}

// RebuildFinished runs the post-build hook when the matching start was observed.
func (o *rebuildObserver) RebuildFinished(result *bundler.Result) error {
	o.mu.Lock()
	if o.inHook || !o.running {
		o.mu.Unlock()
		return nil
	}
	o.running = false
	o.inHook = true
	ctx := o.ctx
	o.mu.Unlock()

	o.logger.Debugf("Rebuild finished, running %s", hooks.PostBuildHook)
	err := o.hooks.PostBuild(ctx, result, o.mode)

	o.mu.Lock()
	o.inHook = false
	o.mu.Unlock()

	if err != nil {
		return o.fail(StageRebuildPost, err)
	}
	return nil
}

func (o *rebuildObserver) fail(stage Stage, err error) error {
	wrapped := &StageError{Stage: stage, Err: err}
	select {
	case o.errs <- wrapped:
	default:
	}
	return wrapped
}

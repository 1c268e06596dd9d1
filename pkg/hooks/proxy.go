package hooks

import (
	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// Proxy makes every hook safely callable whether or not a hooks module exists.
// Absent hooks are no-ops; errors returned by present hooks are passed
// through unchanged. The proxy never produces an error of its own.
type Proxy struct {
	set    Set
	loaded bool
	logs   bool
	logger logger.Logger
}

// ProxyOptions configures a Proxy.
type ProxyOptions struct {
	// Loaded tells whether a hooks module was found and loaded.
	Loaded bool
	// Logs enables "using"/"skipping" messages.
	Logs bool
	// Logger receives the messages. Defaults to a no-op logger.
	Logger logger.Logger
}

// NewProxy wraps set.
func NewProxy(set Set, opts ProxyOptions) *Proxy {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoopLogger()
	}
	return &Proxy{
		set:    set,
		loaded: opts.Loaded,
		logs:   opts.Logs,
		logger: opts.Logger,
	}
}

// NewEmptyProxy returns a proxy for the case where no hooks module exists.
func NewEmptyProxy(l logger.Logger, logs bool) *Proxy {
	return NewProxy(Set{}, ProxyOptions{Logs: logs, Logger: l})
}

// Has reports whether the underlying module implements the named hook.
func (p *Proxy) Has(name Name) bool {
	return p.set.Has(name)
}

// Loaded reports whether a hooks module was loaded at all.
func (p *Proxy) Loaded() bool {
	return p.loaded
}

// Active lists the implemented hooks in lifecycle order.
func (p *Proxy) Active() []Name {
	return p.set.Active()
}

// Config calls the configuration hook, if any.
func (p *Proxy) Config(cfg *bundler.Options, mode bundler.Mode) error {
	if !p.resolve(ConfigHook) {
		return nil
	}
	return p.set.OnConfig(cfg, mode)
}

// PreBuild calls the pre-build hook, if any.
func (p *Proxy) PreBuild(ctx bundler.Context, mode bundler.Mode) error {
	if !p.resolve(PreBuildHook) {
		return nil
	}
	return p.set.OnPreBuild(ctx, mode)
}

// Build calls the build hook, if any. Without one it returns a nil result.
func (p *Proxy) Build(ctx bundler.Context, mode bundler.Mode) (any, error) {
	if !p.resolve(BuildHook) {
		return nil, nil
	}
	return p.set.OnBuild(ctx, mode)
}

// PostBuild calls the post-build hook, if any.
func (p *Proxy) PostBuild(ctx bundler.Context, result any, mode bundler.Mode) error {
	if !p.resolve(PostBuildHook) {
		return nil
	}
	return p.set.OnPostBuild(ctx, result, mode)
}

// resolve logs the dispatch decision for name and reports whether a real hook exists.
func (p *Proxy) resolve(name Name) bool {
	if p.set.Has(name) {
		if p.logs {
			p.logger.Warnf("using override %s", name)
		}
		return true
	}
	if p.logs && p.loaded {
		p.logger.Logf("skipping override %s", name)
	}
	return false
}

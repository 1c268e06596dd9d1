package bundler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/evanw/esbuild/pkg/api"
)

const lifecyclePluginName = "pbuild-lifecycle"

type esbuildEngine struct{}

// NewEsbuildEngine creates an Engine backed by the esbuild Go API.
func NewEsbuildEngine() Engine {
	return &esbuildEngine{}
}

// Context translates opts into esbuild build options and creates a build context.
func (e *esbuildEngine) Context(opts *Options, observer RebuildObserver) (Context, error) {
	buildOpts, err := ToBuildOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if observer != nil {
		buildOpts.Plugins = append(buildOpts.Plugins, lifecyclePlugin(observer))
	}

	ctx, ctxErr := api.Context(buildOpts)
	if ctxErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, formatMessages(convertMessages(ctxErr.Errors)))
	}
	return &esbuildContext{ctx: ctx, outfile: opts.Outfile}, nil
}

// ToBuildOptions maps Options onto esbuild's build options.
func ToBuildOptions(opts *Options) (api.BuildOptions, error) {
	if opts == nil {
		return api.BuildOptions{}, fmt.Errorf("options are nil")
	}
	target, err := ParseTarget(opts.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}
	format, err := parseFormat(opts.Format)
	if err != nil {
		return api.BuildOptions{}, err
	}

	buildOpts := api.BuildOptions{
		EntryPoints:       opts.EntryPoints,
		Bundle:            opts.Bundle,
		External:          opts.External,
		Format:            format,
		Target:            target,
		LogLevel:          parseLogLevel(opts.LogLevel),
		Sourcemap:         parseSourceMap(opts.Sourcemap),
		Outfile:           opts.Outfile,
		MinifyWhitespace:  opts.Minify,
		MinifyIdentifiers: opts.Minify,
		MinifySyntax:      opts.Minify,
		Define:            opts.Define,
		AbsWorkingDir:     opts.AbsWorkingDir,
		Write:             true,
	}
	if opts.Banner != "" {
		buildOpts.Banner = map[string]string{"js": opts.Banner}
	}
	if opts.TreeShaking {
		buildOpts.TreeShaking = api.TreeShakingTrue
	}
	return buildOpts, nil
}

func parseFormat(s string) (api.Format, error) {
	switch strings.ToLower(s) {
	case "":
		return api.FormatDefault, nil
	case "cjs", "commonjs":
		return api.FormatCommonJS, nil
	case "esm":
		return api.FormatESModule, nil
	case "iife":
		return api.FormatIIFE, nil
	default:
		return api.FormatDefault, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func parseLogLevel(s string) api.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return api.LogLevelSilent
	case "verbose":
		return api.LogLevelVerbose
	case "debug":
		return api.LogLevelDebug
	case "warning", "warn":
		return api.LogLevelWarning
	case "error":
		return api.LogLevelError
	default:
		return api.LogLevelInfo
	}
}

func parseSourceMap(s SourceMap) api.SourceMap {
	switch s {
	case SourceMapInline:
		return api.SourceMapInline
	case SourceMapLinked:
		return api.SourceMapLinked
	case SourceMapExternal:
		return api.SourceMapExternal
	case SourceMapBoth:
		return api.SourceMapInlineAndExternal
	default:
		return api.SourceMapNone
	}
}

func lifecyclePlugin(observer RebuildObserver) api.Plugin {
	return api.Plugin{
		Name: lifecyclePluginName,
		Setup: func(build api.PluginBuild) {
			var started time.Time
			build.OnStart(func() (api.OnStartResult, error) {
				started = time.Now()
				return api.OnStartResult{}, observer.RebuildStarted()
			})
			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				res := convertResult(result, "")
				res.Duration = time.Since(started)
				return api.OnEndResult{}, observer.RebuildFinished(res)
			})
		},
	}
}

type esbuildContext struct {
	ctx     api.BuildContext
	outfile string

	mu       sync.Mutex
	watching bool
}

// Rebuild runs one build. Diagnostics are returned as a *BuildError.
func (c *esbuildContext) Rebuild() (*Result, error) {
	start := time.Now()
	raw := c.ctx.Rebuild()
	res := convertResult(&raw, c.outfile)
	res.Duration = time.Since(start)
	if len(res.Errors) > 0 {
		return res, &BuildError{Messages: res.Errors}
	}
	return res, nil
}

// Watch starts esbuild's own watcher. Rebuilds then happen in the background.
func (c *esbuildContext) Watch() (*WatchSession, error) {
	c.mu.Lock()
	if c.watching {
		c.mu.Unlock()
		return nil, ErrAlreadyWatching
	}
	// Plugins may ask Watching() from the initial build esbuild starts here.
	c.watching = true
	c.mu.Unlock()

	if err := c.ctx.Watch(api.WatchOptions{}); err != nil {
		c.mu.Lock()
		c.watching = false
		c.mu.Unlock()
		return nil, err
	}
	return &WatchSession{Started: time.Now()}, nil
}

// Watching reports whether Watch has been started.
func (c *esbuildContext) Watching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.watching
}

// Dispose releases the esbuild context.
func (c *esbuildContext) Dispose() {
	c.ctx.Dispose()
}

func convertResult(r *api.BuildResult, outfile string) *Result {
	res := &Result{
		Errors:   convertMessages(r.Errors),
		Warnings: convertMessages(r.Warnings),
	}
	for _, f := range r.OutputFiles {
		res.OutputFiles = append(res.OutputFiles, f.Path)
	}
	if len(res.OutputFiles) == 0 && len(res.Errors) == 0 && outfile != "" {
		res.OutputFiles = []string{outfile}
	}
	return res
}

func convertMessages(msgs []api.Message) []Message {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		msg := Message{Text: m.Text}
		if m.Location != nil {
			msg.File = m.Location.File
			msg.Line = m.Location.Line
			msg.Column = m.Location.Column
		}
		out = append(out, msg)
	}
	return out
}

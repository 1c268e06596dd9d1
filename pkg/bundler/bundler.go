// Package bundler describes the bundler engine the orchestrator drives and
// provides an esbuild-backed implementation of it.
package bundler

import (
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=bundler.go -destination=mocks/bundler.gen.go -package=mocks

// Mode is the environment mode of a build invocation.
type Mode string

// Supported modes.
const (
	Production  Mode = "production"
	Development Mode = "development"
)

// ParseMode maps a process-level signal to a Mode.
// Only the exact string "production" selects production.
func ParseMode(s string) Mode {
	if s == string(Production) {
		return Production
	}
	return Development
}

// IsProduction reports whether m is the production mode.
func (m Mode) IsProduction() bool {
	return m == Production
}

// SourceMap selects how source maps are emitted.
type SourceMap string

// Supported source map settings.
const (
	SourceMapNone     SourceMap = ""
	SourceMapInline   SourceMap = "inline"
	SourceMapLinked   SourceMap = "linked"
	SourceMapExternal SourceMap = "external"
	SourceMapBoth     SourceMap = "both"
)

// Options is the configuration handed to the bundler engine.
// Hooks receive a pointer to it and may change any field in place.
type Options struct {
	Banner        string
	EntryPoints   []string
	Bundle        bool
	External      []string
	Format        string
	Target        string
	LogLevel      string
	Sourcemap     SourceMap
	TreeShaking   bool
	Outfile       string
	Minify        bool
	Define        map[string]string
	AbsWorkingDir string
}

// Message is a diagnostic produced by the bundler.
type Message struct {
	Text   string
	File   string
	Line   int
	Column int
}

// Result is the outcome of a single build.
type Result struct {
	Errors      []Message
	Warnings    []Message
	OutputFiles []string
	Duration    time.Duration
}

// WatchSession is the handle returned once a watch session has started.
type WatchSession struct {
	Started time.Time
}

// Engine creates build contexts from options.
type Engine interface {
	// Context validates opts and returns an incremental build context.
	// observer may be nil; when set it is told about every build the context runs.
	Context(opts *Options, observer RebuildObserver) (Context, error)
}

// Context is an incremental build or watch session.
type Context interface {
	// Rebuild runs a single build and waits for it to finish.
	Rebuild() (*Result, error)

	// Watch starts rebuilding on source changes and returns once watching has begun.
	Watch() (*WatchSession, error)

	// Watching reports whether Watch has been started on this context.
	Watching() bool

	// Dispose releases the context and stops any watch session.
	Dispose()
}

// RebuildObserver is notified around every build run by a Context.
type RebuildObserver interface {
	RebuildStarted() error
	RebuildFinished(result *Result) error
}

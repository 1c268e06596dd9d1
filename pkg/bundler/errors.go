package bundler

import (
	"errors"
	"fmt"
	"strings"
)

// Error definitions for bundler package.
var (
	// ErrInvalidOptions is returned when the engine rejects the assembled options.
	ErrInvalidOptions = errors.New("invalid bundler options")
	// ErrUnknownTarget is returned for a compiler target esbuild does not know.
	ErrUnknownTarget = errors.New("unknown compiler target")
	// ErrUnknownFormat is returned for an output format esbuild does not know.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrBuildFailed is returned when a build finishes with errors.
	ErrBuildFailed = errors.New("build failed")
	// ErrAlreadyWatching is returned when Watch is called twice on one context.
	ErrAlreadyWatching = errors.New("context is already watching")
)

// BuildError carries the diagnostics of a failed build.
type BuildError struct {
	Messages []Message
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s with %d error(s): %s", ErrBuildFailed, len(e.Messages), formatMessages(e.Messages))
}

func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}

func formatMessages(msgs []Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.File == "" {
			parts = append(parts, m.Text)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d:%d: %s", m.File, m.Line, m.Column, m.Text))
	}
	return strings.Join(parts, "; ")
}

package logger

import "errors"

// Error definitions for logger package.
var (
	// ErrUnknownLevel is returned when a configured log level is not recognised.
	ErrUnknownLevel = errors.New("unknown log level")
)

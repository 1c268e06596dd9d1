package orchestrator

import (
	"errors"
	"fmt"
)

// Error definitions for orchestrator package.
var (
	// ErrConfiguration is returned when the bundler rejects the assembled configuration.
	ErrConfiguration = errors.New("bundler rejected the configuration")
	// ErrHooksMissing is returned when the orchestrator is built without a hook proxy.
	ErrHooksMissing = errors.New("hook proxy is required but not set")
	// ErrEngineMissing is returned when the orchestrator is built without a bundler engine.
	ErrEngineMissing = errors.New("bundler engine is required but not set")
)

// ConfigurationError is returned by the Initialize stage. It is never retried.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrConfiguration, e.Err)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// StageError ties a failure to the lifecycle stage it aborted.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

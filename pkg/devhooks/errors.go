package devhooks

import (
	"errors"
	"fmt"

	"github.com/lerenn/plugin-builder/pkg/hooks"
)

// Error definitions for devhooks package.
var (
	// ErrModuleLoad is wrapped by every ModuleLoadError.
	ErrModuleLoad = errors.New("hooks module failed to load")
	// ErrWrongPackage is returned when the hooks module is not package main.
	ErrWrongPackage = errors.New("hooks module must declare package main")
	// ErrHookSignature is returned when a hook function has an unexpected signature.
	ErrHookSignature = errors.New("hook has an unexpected signature")
	// ErrHookPanic is wrapped by every PanicError.
	ErrHookPanic = errors.New("hook panicked")
)

// ModuleLoadError reports a hooks module that exists but cannot be used.
// It is fatal: a present but broken module is an operator error.
type ModuleLoadError struct {
	Path string
	Err  error
}

func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrModuleLoad, e.Path, e.Err)
}

func (e *ModuleLoadError) Unwrap() []error {
	return []error{ErrModuleLoad, e.Err}
}

// PanicError is returned in place of a panic raised by interpreted hook code.
type PanicError struct {
	Hook  hooks.Name
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrHookPanic, e.Hook, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrHookPanic
}

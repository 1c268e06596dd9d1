// Package devhooks discovers and loads the optional, environment-local hooks
// module. The module is a Go source file evaluated with yaegi; it may define
// any subset of OnConfig, OnPreBuild, OnBuild and OnPostBuild.
package devhooks

import (
	"fmt"
	"go/parser"
	"go/token"
	"reflect"

	"github.com/lerenn/plugin-builder/pkg/fs"
	"github.com/lerenn/plugin-builder/pkg/hooks"
	"github.com/lerenn/plugin-builder/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// DefaultPath is the project-relative location of the hooks module.
const DefaultPath = ".devhooks.go"

// symbolNames maps hook names to the functions a hooks module defines.
var symbolNames = map[hooks.Name]string{
	hooks.ConfigHook:    "OnConfig",
	hooks.PreBuildHook:  "OnPreBuild",
	hooks.BuildHook:     "OnBuild",
	hooks.PostBuildHook: "OnPostBuild",
}

// Symbol returns the function name a hooks module uses for name.
func Symbol(name hooks.Name) string {
	return symbolNames[name]
}

// Loader finds and evaluates hooks modules.
type Loader struct {
	fs     fs.FS
	logger logger.Logger
}

// NewLoader creates a Loader.
func NewLoader(fsys fs.FS, l logger.Logger) *Loader {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &Loader{fs: fsys, logger: l}
}

// Discover reports whether a hooks module exists at path.
// A missing file is the common case and never an error.
func (l *Loader) Discover(path string) bool {
	exists, err := l.fs.Exists(path)
	if err != nil {
		l.logger.Warnf("cannot check hooks module %s, treating it as absent: %v", path, err)
		return false
	}
	return exists
}

// Load evaluates the module at path and returns the hooks it defines.
// Any failure is returned as a *ModuleLoadError.
func (l *Loader) Load(path string) (set hooks.Set, err error) {
	fail := func(cause error) (hooks.Set, error) {
		return hooks.Set{}, &ModuleLoadError{Path: path, Err: cause}
	}

	src, err := l.fs.ReadFile(path)
	if err != nil {
		return fail(err)
	}
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.PackageClauseOnly)
	if err != nil {
		return fail(err)
	}
	if f.Name.Name != "main" {
		return fail(fmt.Errorf("%w, found package %s", ErrWrongPackage, f.Name.Name))
	}

	defer func() {
		if r := recover(); r != nil {
			set, err = fail(fmt.Errorf("panic during evaluation: %v", r))
		}
	}()

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return fail(err)
	}
	if err := i.Use(Symbols); err != nil {
		return fail(err)
	}
	if _, err := i.Eval(string(src)); err != nil {
		return fail(err)
	}

	if set.OnConfig, err = bind[hooks.ConfigFunc](l, i, hooks.ConfigHook); err != nil {
		return fail(err)
	}
	if set.OnPreBuild, err = bind[hooks.PreBuildFunc](l, i, hooks.PreBuildHook); err != nil {
		return fail(err)
	}
	if set.OnBuild, err = bind[hooks.BuildFunc](l, i, hooks.BuildHook); err != nil {
		return fail(err)
	}
	if set.OnPostBuild, err = bind[hooks.PostBuildFunc](l, i, hooks.PostBuildHook); err != nil {
		return fail(err)
	}
	return set, nil
}

// Open discovers the module at path and wraps whatever was found in a proxy.
// logs controls both the found/absent message and the proxy's per-hook messages.
func (l *Loader) Open(path string, logs bool) (*hooks.Proxy, error) {
	if !l.Discover(path) {
		if logs {
			l.logger.Logf("hooks module absent, proceeding without it")
		}
		return hooks.NewEmptyProxy(l.logger, logs), nil
	}

	set, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if logs {
		l.logger.Warnf("hooks module found and will be used: %s", path)
	}
	return hooks.NewProxy(hooks.WithLogging(set, l.logger), hooks.ProxyOptions{
		Loaded: true,
		Logs:   logs,
		Logger: l.logger,
	}), nil
}

// bind looks up the function for name in the interpreter and converts it to F.
// An undefined symbol, a nil function or a non-function value is an absent hook.
func bind[F any](l *Loader, i *interp.Interpreter, name hooks.Name) (F, error) {
	var zero F
	symbol := Symbol(name)

	v, err := i.Eval(symbol)
	if err != nil || !v.IsValid() {
		return zero, nil
	}
	if v.Kind() != reflect.Func {
		l.logger.Debugf("hooks module defines %s as %s, not a function; ignoring it", symbol, v.Kind())
		return zero, nil
	}
	if v.IsNil() {
		return zero, nil
	}

	want := reflect.TypeOf(zero)
	if !v.Type().ConvertibleTo(want) {
		return zero, fmt.Errorf("%w: %s is %s, want %s", ErrHookSignature, symbol, v.Type(), want)
	}
	fn := v.Convert(want)
	return guard(name, fn).Interface().(F), nil
}

// guard wraps fn so a panic in interpreted code comes back as a *PanicError
// in the function's trailing error result.
func guard(name hooks.Name, fn reflect.Value) reflect.Value {
	t := fn.Type()
	return reflect.MakeFunc(t, func(args []reflect.Value) (results []reflect.Value) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			results = make([]reflect.Value, t.NumOut())
			for idx := range results {
				results[idx] = reflect.New(t.Out(idx)).Elem()
			}
			results[len(results)-1].Set(reflect.ValueOf(&PanicError{Hook: name, Value: r}))
		}()
		return fn.Call(args)
	})
}

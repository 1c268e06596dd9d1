// Package hooks provides the interception layer the build orchestrator calls
// at each lifecycle stage of a build.
package hooks

import (
	"github.com/lerenn/plugin-builder/pkg/bundler"
)

// Name identifies a hook. The set of names is closed.
type Name string

// Hook names, in lifecycle order.
const (
	ConfigHook    Name = "onConfig"
	PreBuildHook  Name = "onPreBuild"
	BuildHook     Name = "onBuild"
	PostBuildHook Name = "onPostBuild"
)

// Names returns every hook name in lifecycle order.
func Names() []Name {
	return []Name{ConfigHook, PreBuildHook, BuildHook, PostBuildHook}
}

// Valid reports whether n is one of the known hook names.
func (n Name) Valid() bool {
	switch n {
	case ConfigHook, PreBuildHook, BuildHook, PostBuildHook:
		return true
	}
	return false
}

// ConfigFunc may change the bundler options in place.
type ConfigFunc func(cfg *bundler.Options, mode bundler.Mode) error

// PreBuildFunc runs once the build context exists, before anything is built.
type PreBuildFunc func(ctx bundler.Context, mode bundler.Mode) error

// BuildFunc replaces the default build step. Its result is passed to the post-build hook.
type BuildFunc func(ctx bundler.Context, mode bundler.Mode) (any, error)

// PostBuildFunc inspects the result of the build step.
type PostBuildFunc func(ctx bundler.Context, result any, mode bundler.Mode) error

// Set is the capability set of a hooks module. A nil field is an absent hook.
// A Set is not modified after it has been loaded.
type Set struct {
	OnConfig    ConfigFunc
	OnPreBuild  PreBuildFunc
	OnBuild     BuildFunc
	OnPostBuild PostBuildFunc
}

// Has reports whether the set implements the named hook.
func (s Set) Has(name Name) bool {
	switch name {
	case ConfigHook:
		return s.OnConfig != nil
	case PreBuildHook:
		return s.OnPreBuild != nil
	case BuildHook:
		return s.OnBuild != nil
	case PostBuildHook:
		return s.OnPostBuild != nil
	}
	return false
}

// Active lists the implemented hooks in lifecycle order.
func (s Set) Active() []Name {
	var names []Name
	for _, n := range Names() {
		if s.Has(n) {
			names = append(names, n)
		}
	}
	return names
}

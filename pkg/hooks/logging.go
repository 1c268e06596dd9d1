package hooks

import (
	"time"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// WithLogging wraps every present hook of set so that its start, duration and
// failure are logged at debug level. Absent hooks stay absent.
func WithLogging(set Set, l logger.Logger) Set {
	out := Set{}
	if set.OnConfig != nil {
		out.OnConfig = func(cfg *bundler.Options, mode bundler.Mode) error {
			done := start(l, ConfigHook, mode)
			err := set.OnConfig(cfg, mode)
			done(err)
			return err
		}
	}
	if set.OnPreBuild != nil {
		out.OnPreBuild = func(ctx bundler.Context, mode bundler.Mode) error {
			done := start(l, PreBuildHook, mode)
			err := set.OnPreBuild(ctx, mode)
			done(err)
			return err
		}
	}
	if set.OnBuild != nil {
		out.OnBuild = func(ctx bundler.Context, mode bundler.Mode) (any, error) {
			done := start(l, BuildHook, mode)
			res, err := set.OnBuild(ctx, mode)
			done(err)
			return res, err
		}
	}
	if set.OnPostBuild != nil {
		out.OnPostBuild = func(ctx bundler.Context, result any, mode bundler.Mode) error {
			done := start(l, PostBuildHook, mode)
			err := set.OnPostBuild(ctx, result, mode)
			done(err)
			return err
		}
	}
	return out
}

func start(l logger.Logger, name Name, mode bundler.Mode) func(error) {
	l.Debugf("Starting hook: %s (%s)", name, mode)
	began := time.Now()
	return func(err error) {
		if err != nil {
			l.Debugf("Hook failed: %s after %s, error: %v", name, time.Since(began), err)
			return
		}
		l.Debugf("Hook completed: %s in %s", name, time.Since(began))
	}
}

//go:build unit

package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	bundlermocks "github.com/lerenn/plugin-builder/pkg/bundler/mocks"
	"github.com/lerenn/plugin-builder/pkg/hooks"
	"github.com/lerenn/plugin-builder/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator(t *testing.T, engine bundler.Engine, set hooks.Set, loaded bool) (*Orchestrator, *logger.Recorder) {
	t.Helper()
	rec := logger.NewRecorder()
	proxy := hooks.NewProxy(set, hooks.ProxyOptions{Loaded: loaded, Logs: true, Logger: rec})
	o, err := New(Params{Engine: engine, Hooks: proxy, Logger: rec})
	require.NoError(t, err)
	return o, rec
}

func baseline(mode bundler.Mode) *bundler.Options {
	return &bundler.Options{
		EntryPoints: []string{"main.ts"},
		Bundle:      true,
		Outfile:     "main.js",
		Minify:      mode.IsProduction(),
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := New(Params{Hooks: hooks.NewEmptyProxy(nil, false)})
	assert.ErrorIs(t, err, ErrEngineMissing)

	_, err = New(Params{Engine: bundlermocks.NewMockEngine(ctrl)})
	assert.ErrorIs(t, err, ErrHooksMissing)
}

func TestRun_ProductionWithoutHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	opts := baseline(bundler.Production)
	built := &bundler.Result{OutputFiles: []string{"main.js"}}

	gomock.InOrder(
		engine.EXPECT().Context(opts, nil).Return(bctx, nil),
		bctx.EXPECT().Rebuild().Return(built, nil).Times(1),
		bctx.EXPECT().Watching().Return(false),
		bctx.EXPECT().Dispose(),
	)

	o, rec := newTestOrchestrator(t, engine, hooks.Set{}, false)
	outcome, err := o.Run(context.Background(), opts, bundler.Production)
	require.NoError(t, err)

	assert.Same(t, built, outcome.Result)
	assert.False(t, outcome.Delegated)
	assert.False(t, outcome.Watched)
	assert.True(t, rec.Contains("Building in production mode"))
	assert.False(t, rec.Contains("override"))
}

func TestRun_ConfigHookMutationReachesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	opts := baseline(bundler.Production)

	engine.EXPECT().Context(gomock.Any(), nil).DoAndReturn(
		func(got *bundler.Options, _ bundler.RebuildObserver) (bundler.Context, error) {
			assert.Same(t, opts, got)
			assert.False(t, got.Minify)
			return bctx, nil
		})
	bctx.EXPECT().Rebuild().Return(&bundler.Result{}, nil)
	bctx.EXPECT().Watching().Return(false)
	bctx.EXPECT().Dispose()

	set := hooks.Set{
		OnConfig: func(cfg *bundler.Options, _ bundler.Mode) error {
			cfg.Minify = false
			return nil
		},
	}
	o, rec := newTestOrchestrator(t, engine, set, true)
	outcome, err := o.Run(context.Background(), opts, bundler.Production)
	require.NoError(t, err)
	assert.False(t, outcome.Options.Minify)
	assert.True(t, rec.Contains("using override onConfig"))
	assert.True(t, rec.Contains("skipping override onPreBuild"))
}

func TestRun_DelegatedBuild(t *testing.T) {
	for _, mode := range []bundler.Mode{bundler.Production, bundler.Development} {
		t.Run(string(mode), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := bundlermocks.NewMockEngine(ctrl)
			bctx := bundlermocks.NewMockContext(ctrl)
			engine.EXPECT().Context(gomock.Any(), nil).Return(bctx, nil)
			// No Rebuild or Watch expectation: the default path must not run.
			bctx.EXPECT().Watching().Return(false)
			bctx.EXPECT().Dispose()

			var posted any
			set := hooks.Set{
				OnBuild: func(got bundler.Context, _ bundler.Mode) (any, error) {
					assert.Equal(t, bundler.Context(bctx), got)
					return "X", nil
				},
				OnPostBuild: func(_ bundler.Context, result any, _ bundler.Mode) error {
					posted = result
					return nil
				},
			}
			o, _ := newTestOrchestrator(t, engine, set, true)
			outcome, err := o.Run(context.Background(), baseline(mode), mode)
			require.NoError(t, err)
			assert.Equal(t, "X", posted)
			assert.Equal(t, "X", outcome.Result)
			assert.True(t, outcome.Delegated)
		})
	}
}

func TestRun_StageOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls []string
	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	engine.EXPECT().Context(gomock.Any(), nil).DoAndReturn(
		func(*bundler.Options, bundler.RebuildObserver) (bundler.Context, error) {
			calls = append(calls, "initialize")
			return bctx, nil
		})
	bctx.EXPECT().Rebuild().DoAndReturn(func() (*bundler.Result, error) {
		calls = append(calls, "rebuild")
		return &bundler.Result{}, nil
	})
	bctx.EXPECT().Watching().Return(false)
	bctx.EXPECT().Dispose()

	set := hooks.Set{
		OnConfig: func(*bundler.Options, bundler.Mode) error {
			calls = append(calls, "config")
			return nil
		},
		OnPreBuild: func(bundler.Context, bundler.Mode) error {
			calls = append(calls, "pre")
			return nil
		},
		OnPostBuild: func(_ bundler.Context, result any, _ bundler.Mode) error {
			calls = append(calls, "post")
			assert.IsType(t, &bundler.Result{}, result)
			return nil
		},
	}
	o, _ := newTestOrchestrator(t, engine, set, true)
	_, err := o.Run(context.Background(), baseline(bundler.Production), bundler.Production)
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "initialize", "pre", "rebuild", "post"}, calls)
}

func TestRun_ConfigHookFailureStopsBeforeInitialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	hookErr := errors.New("bad override")
	set := hooks.Set{
		OnConfig: func(*bundler.Options, bundler.Mode) error { return hookErr },
	}

	o, _ := newTestOrchestrator(t, engine, set, true)
	_, err := o.Run(context.Background(), baseline(bundler.Development), bundler.Development)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageConfigure, stageErr.Stage)
	assert.ErrorIs(t, err, hookErr)
}

func TestRun_InitializeFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	engine.EXPECT().Context(gomock.Any(), nil).Return(nil, bundler.ErrUnknownTarget).Times(1)

	preCalled := false
	set := hooks.Set{
		OnPreBuild: func(bundler.Context, bundler.Mode) error {
			preCalled = true
			return nil
		},
	}
	o, _ := newTestOrchestrator(t, engine, set, true)
	_, err := o.Run(context.Background(), baseline(bundler.Production), bundler.Production)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, err, bundler.ErrUnknownTarget)
	assert.False(t, preCalled)
}

func TestRun_PreBuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	engine.EXPECT().Context(gomock.Any(), nil).Return(bctx, nil)
	bctx.EXPECT().Dispose()

	set := hooks.Set{
		OnPreBuild: func(bundler.Context, bundler.Mode) error { return errors.New("no") },
	}
	o, _ := newTestOrchestrator(t, engine, set, true)
	_, err := o.Run(context.Background(), baseline(bundler.Production), bundler.Production)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StagePreBuild, stageErr.Stage)
}

func TestRun_ProductionBuildFailureSkipsPostBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	engine.EXPECT().Context(gomock.Any(), nil).Return(bctx, nil)
	buildErr := &bundler.BuildError{Messages: []bundler.Message{{Text: "unexpected token"}}}
	bctx.EXPECT().Rebuild().Return(&bundler.Result{Errors: buildErr.Messages}, buildErr)
	bctx.EXPECT().Dispose()

	postCalled := false
	set := hooks.Set{
		OnPostBuild: func(bundler.Context, any, bundler.Mode) error {
			postCalled = true
			return nil
		},
	}
	o, _ := newTestOrchestrator(t, engine, set, true)
	_, err := o.Run(context.Background(), baseline(bundler.Production), bundler.Production)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageBuild, stageErr.Stage)
	assert.ErrorIs(t, err, bundler.ErrBuildFailed)
	assert.False(t, postCalled)
}

func TestRun_DevelopmentWatchesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)
	session := &bundler.WatchSession{Started: time.Now()}

	engine.EXPECT().Context(gomock.Any(), nil).Return(bctx, nil)
	bctx.EXPECT().Watch().Return(session, nil).Times(1)
	bctx.EXPECT().Watching().Return(true)
	bctx.EXPECT().Dispose()

	var posted any
	set := hooks.Set{
		OnPostBuild: func(_ bundler.Context, result any, _ bundler.Mode) error {
			posted = result
			return nil
		},
	}
	o, rec := newTestOrchestrator(t, engine, set, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, err := o.Run(ctx, baseline(bundler.Development), bundler.Development)
	require.NoError(t, err)
	assert.Same(t, session, posted)
	assert.True(t, outcome.Watched)
	assert.True(t, rec.Contains("Watching for changes"))
}

func TestRun_RebuildHookFailureEndsWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bundlermocks.NewMockEngine(ctrl)
	bctx := bundlermocks.NewMockContext(ctrl)

	var observer *rebuildObserver
	engine.EXPECT().Context(gomock.Any(), gomock.Not(gomock.Nil())).DoAndReturn(
		func(_ *bundler.Options, obs bundler.RebuildObserver) (bundler.Context, error) {
			observer = obs.(*rebuildObserver)
			return bctx, nil
		})
	bctx.EXPECT().Watch().DoAndReturn(func() (*bundler.WatchSession, error) {
		// The initial watch build is not observed.
		require.NoError(t, observer.RebuildStarted())
		require.NoError(t, observer.RebuildFinished(&bundler.Result{}))
		return &bundler.WatchSession{}, nil
	})
	bctx.EXPECT().Watching().DoAndReturn(func() bool {
		go func() {
			for !isOpen(observer) {
				time.Sleep(time.Millisecond)
			}
			_ = observer.RebuildStarted()
		}()
		return true
	})
	bctx.EXPECT().Dispose()

	preCalls := 0
	set := hooks.Set{
		OnPreBuild: func(bundler.Context, bundler.Mode) error {
			preCalls++
			if preCalls > 1 {
				return errors.New("rebuild refused")
			}
			return nil
		},
	}
	rec := logger.NewRecorder()
	o, err := New(Params{
		Engine:       engine,
		Hooks:        hooks.NewProxy(set, hooks.ProxyOptions{Loaded: true, Logger: rec}),
		Logger:       rec,
		RebuildHooks: true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = o.Run(ctx, baseline(bundler.Development), bundler.Development)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageRebuildPre, stageErr.Stage)
	assert.EqualError(t, stageErr.Err, "rebuild refused")
	assert.Equal(t, 2, preCalls)
}

func isOpen(o *rebuildObserver) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/lerenn/plugin-builder/pkg/logger"
)

// moduleWatcher warns when the hooks module changes during a watch session.
// Hooks are loaded once per process, so edits only apply after a restart.
type moduleWatcher struct {
	path    string
	logger  logger.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func watchModule(ctx context.Context, path string, l logger.Logger) (*moduleWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hooks module path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace files on save, so watch the directory.
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	mw := &moduleWatcher{
		path:    absPath,
		logger:  l,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go mw.loop(ctx)
	return mw, nil
}

func (mw *moduleWatcher) loop(ctx context.Context) {
	defer close(mw.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != mw.path {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				mw.logger.Warnf("hooks module %s was removed; restart to run without it", mw.path)
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				mw.logger.Warnf("hooks module %s changed; restart to apply the new hooks", mw.path)
			}
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			mw.logger.Debugf("hooks module watcher error: %v", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine.
func (mw *moduleWatcher) Close() {
	_ = mw.watcher.Close()
	<-mw.done
}

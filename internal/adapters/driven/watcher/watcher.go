// Package watcher detects changes to the corpus source files after the
// index was built. The index is immutable for the process lifetime, so a
// change only marks the corpus stale; the health endpoint surfaces it and
// the operator restarts to rebuild.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// Watcher marks the corpus stale when a watched source file changes.
type Watcher struct {
	fs    *fsnotify.Watcher
	paths map[string]struct{}
	stale atomic.Bool
}

// New creates a watcher over the given source files. Files that do not
// exist yet are still covered by watching their parent directory.
func New(paths ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:    fs,
		paths: make(map[string]struct{}, len(paths)),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		w.paths[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fs.Add(dir); err != nil {
			logger.Warn("watching %s failed: %v", dir, err)
		}
	}

	return w, nil
}

// Run processes events until the context is cancelled. Call in a
// goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := w.paths[abs]; watched {
				if w.stale.CompareAndSwap(false, true) {
					logger.Warn("corpus source changed: %s (restart to rebuild the index)", abs)
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// Stale reports whether a corpus source changed since the index was
// built.
func (w *Watcher) Stale() bool {
	return w.stale.Load()
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

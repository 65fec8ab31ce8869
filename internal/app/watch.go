// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/internal/logger"
)

// GraphWatcher notices when a graph file changes on disk.
//
// The parent directory is watched rather than the file itself, since
// editors often save by writing a new file and renaming it into place.
type GraphWatcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	log       *logger.Logger
	changed   atomic.Bool
	done      chan struct{}
}

// WatchGraph starts watching path until ctx ends or Close is called.
func WatchGraph(ctx context.Context, path string, log *logger.Logger) (*GraphWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve graph path"), "graph", path)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to watch graph"), "graph", path)
	}

	w := &GraphWatcher{
		fsWatcher: fw,
		path:      filepath.Clean(abs),
		log:       log,
		done:      make(chan struct{}),
	}
	go w.processEvents(ctx)

	return w, nil
}

// Changed reports whether the file changed since the previous call.
func (w *GraphWatcher) Changed() bool {
	return w.changed.Swap(false)
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *GraphWatcher) Close() error {
	err := w.fsWatcher.Close()
	<-w.done
	return err
}

func (w *GraphWatcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				w.changed.Store(true)
				w.log.Debug("graph file changed", zap.String("graph", w.path), zap.Stringer("op", event.Op))
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("graph watcher error", zap.Error(err))
		}
	}
}

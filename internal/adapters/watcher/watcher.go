// Package watcher implements file system watching for the watch subcommand.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched. The
// build tree is excluded so rebuilds do not retrigger themselves.
var shouldSkipDirectories = map[string]bool{
	".git":                 true,
	"node_modules":         true,
	domain.DefaultBuildDir: true,
}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories and keep walking.
				return nil //nolint:nilerr // intentional
			}
			if d.IsDir() {
				if shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents forwards fsnotify events until the context is done or the
// watcher is closed.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Remove) &&
				!event.Op.Has(fsnotify.Rename) {
				continue
			}

			// New directories need to be added to the watch set.
			// addIfDir is a no-op for plain files.
			if event.Op.Has(fsnotify.Create) {
				_ = w.addIfDir(event.Name)
			}

			select {
			case w.events <- ports.WatchEvent{Path: event.Name}:
			case <-ctx.Done():
				return
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) addIfDir(path string) error {
	for dir := range w.watchRecursively(path) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}
	return nil
}

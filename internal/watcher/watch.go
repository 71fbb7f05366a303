package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tonhe/graf/internal/logging"
)

// Watch calls onChange, debounced, whenever path is written, created or
// renamed into place. It watches the parent directory so editors that
// replace the file atomically are still seen. Watch blocks until ctx is
// done and returns nil, or returns the error that stopped the watcher.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	d := NewDebouncer(debounce)
	defer d.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				logging.Debugf("watcher: %s %s", ev.Op, ev.Name)
				d.Trigger(onChange)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("watcher: %v", err)
		}
	}
}

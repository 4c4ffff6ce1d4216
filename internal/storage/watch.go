package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"deskclock/internal/core/model"
	"github.com/fsnotify/fsnotify"
)

// Watch reports external edits of the preferences file until ctx is done.
// Writes made through Save are not reported back.
func (store *Store) Watch(ctx context.Context, onChange func(model.Preferences)) error {
	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create preferences watcher: %w", err)
	}
	// Editors often replace the file, so the directory is watched instead.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				store.handleEvent(event, onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("preferences watcher error", "error", err)
			}
		}
	}()
	return nil
}

func (store *Store) handleEvent(event fsnotify.Event, onChange func(model.Preferences)) {
	if filepath.Clean(event.Name) != filepath.Clean(store.path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	rawData, err := os.ReadFile(store.path)
	if err != nil || len(rawData) == 0 {
		return
	}
	if store.wroteLast(rawData) {
		return
	}

	prefs, err := decodePreferences(rawData)
	if err != nil {
		slog.Warn("ignoring edited preferences", "path", store.path, "error", err)
		return
	}
	onChange(prefs)
}

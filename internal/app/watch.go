package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// watchConfig enqueues App(Reload) whenever path is written or replaced.
// The parent directory is watched so editors that save by rename are seen.
func watchConfig(ctx context.Context, path string, bus event.Sender) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	events.Config.Watch(target)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				events.Config.Changed(ev.Name, ev.Op.String())
				if !bus.Send(event.App(event.CommandReload)) {
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Errorf("config watcher", err)
			}
		}
	}()
	return nil
}

package cli

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchStatus calls emit with the one-line status whenever it changes, until
// ctx is done. It re-reads state on every ticker tick and on file system
// events under the root and the state directory.
func watchStatus(ctx context.Context, e *env, interval time.Duration, emit func(string)) error {
	store := e.ctrl.Store()
	log := e.log.With("component", "watch")

	var events <-chan fsnotify.Event
	var errs <-chan error

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("file watching unavailable, polling only", "error", err)
	} else {
		defer watcher.Close()
		if err := watcher.Add(e.root); err != nil {
			log.Warn("failed to watch root", "root", e.root, "error", err)
		}
		// The state directory may not exist yet; it is added once it appears.
		_ = watcher.Add(store.Dir())
		events = watcher.Events
		errs = watcher.Errors
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := ""
	refresh := func() {
		line := statusLine(e.ctrl.GetState())
		if line != last {
			last = line
			emit(line)
		}
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			refresh()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Name == store.Dir() && ev.Has(fsnotify.Create) {
				_ = watcher.Add(store.Dir())
			}
			refresh()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("file watcher error", "error", err)
		}
	}
}

package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher watches the studio config file and invokes a callback after
// rewrites settle. Editors typically replace files via rename, so the parent
// directory is watched and events are filtered by name. Bursts of events from
// a single save are coalesced through a Debouncer.
type ConfigWatcher struct {
	fsw  *fsnotify.Watcher
	deb  *Debouncer
	path string
	done chan struct{}
	log  *slog.Logger
}

// NewConfigWatcher starts watching path and calls onChange after each settled
// rewrite. A zero debounce falls back to DefaultDebounceDuration.
func NewConfigWatcher(path string, debounce time.Duration, onChange func(), log *slog.Logger) (*ConfigWatcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	cw := &ConfigWatcher{
		fsw:  fsw,
		deb:  NewDebouncer(debounce),
		path: filepath.Clean(path),
		done: make(chan struct{}),
		log:  log,
	}
	go cw.run(onChange)
	return cw, nil
}

func (cw *ConfigWatcher) run(onChange func()) {
	for {
		select {
		case ev, ok := <-cw.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cw.deb.Trigger(onChange)
		case err, ok := <-cw.fsw.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config watch error", "error", err)
		case <-cw.done:
			return
		}
	}
}

// Close stops the watcher and discards any pending callback.
func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	cw.deb.Cancel()
	return cw.fsw.Close()
}

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/muurk/weather/internal/logging"
)

// DefaultDebounce is how long the Watcher waits for a burst of file events to settle.
const DefaultDebounce = 250 * time.Millisecond

// Change describes an out-of-band edit of the store.
type Change struct {
	// Settings is the newly loaded settings record, or nil when it did not change.
	Settings *Settings
	// ThemeMode is set when the system theme-mode record changed.
	ThemeMode bool
}

// Watcher monitors the store directory and publishes Changes made by other processes.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	changes  chan Change
	stop     chan struct{}
	stopOnce sync.Once

	// Debounce can be adjusted before Start.
	Debounce time.Duration
}

// NewWatcher creates a watcher for store. Call Start to begin watching.
func NewWatcher(store *Store) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		store:    store,
		watcher:  watcher,
		changes:  make(chan Change, 4),
		stop:     make(chan struct{}),
		Debounce: DefaultDebounce,
	}, nil
}

// Changes returns the channel on which changes are delivered.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins monitoring. The store directory is created if needed so that
// files appearing later are seen.
func (w *Watcher) Start(ctx context.Context) error {
	dir := w.store.Dir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Watching the directory survives the rename performed by atomic writes.
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	logging.Debug("Starting config watcher", zap.String("dir", dir))
	go w.loop(ctx)
	return nil
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if name != settingsFile && name != themeModeFile {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			logging.Debug("Config file event", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			pending[name] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.Debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			change, changed := w.collect(pending)
			pending = make(map[string]bool)
			if !changed {
				continue
			}
			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Config watcher error", zap.Error(err))
		}
	}
}

// collect reads the files named in pending and builds a Change, skipping
// content this process wrote itself.
func (w *Watcher) collect(pending map[string]bool) (Change, bool) {
	var change Change

	if pending[settingsFile] {
		if settings, ok := w.readSettings(); ok {
			change.Settings = &settings
		}
	}

	if pending[themeModeFile] {
		data, err := os.ReadFile(w.store.ThemeModePath())
		switch {
		case errors.Is(err, os.ErrNotExist):
			change.ThemeMode = true
		case err != nil:
			logging.Warn("Failed to read theme mode", zap.Error(err))
		case !w.store.wroteLast(themeModeFile, data):
			change.ThemeMode = true
		}
	}

	return change, change.Settings != nil || change.ThemeMode
}

func (w *Watcher) readSettings() (Settings, bool) {
	data, err := os.ReadFile(w.store.SettingsPath())
	if err != nil {
		// Removal mid-edit is common; the next write will be picked up.
		logging.Debug("Settings file not readable", zap.Error(err))
		return Settings{}, false
	}
	if w.store.wroteLast(settingsFile, data) {
		return Settings{}, false
	}

	settings, err := parseSettings(data)
	if err != nil {
		logging.Warn("Ignoring invalid settings edit", zap.String("path", w.store.SettingsPath()), zap.Error(err))
		return Settings{}, false
	}
	return settings, true
}

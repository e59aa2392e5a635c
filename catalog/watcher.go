package catalog

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/austencloud/tka-engine/errors"
	"github.com/austencloud/tka-engine/logger"
)

// Watcher watches the dataset file and rebuilds the catalog on change.
// The catalog value itself stays immutable: every reload produces a fresh
// *Catalog handed to the registered callbacks, and a failed reload keeps
// the previous catalog in service.
type Watcher struct {
	datasetPath    string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called with the freshly loaded catalog after a
// successful reload.
type ReloadCallback func(*Catalog) error

// NewWatcher creates a dataset file watcher. debounce coalesces the rapid
// event bursts editors produce on save; zero selects a 500ms default.
func NewWatcher(datasetPath string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(datasetPath); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch dataset file %s", datasetPath)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		datasetPath:    datasetPath,
		watcher:        fsw,
		callbacks:      make([]ReloadCallback, 0),
		debouncePeriod: debounce,
	}, nil
}

// OnReload registers a callback to be called when the dataset is reloaded
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for dataset file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("dataset watcher detected change",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("dataset watcher error",
				"error", err.Error())
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("dataset reload failed, previous catalog stays in service",
				"error", err.Error())
		}
	})
}

// reload rebuilds the catalog and calls all callbacks
func (w *Watcher) reload() error {
	fresh, err := Load(w.datasetPath)
	if err != nil {
		return err
	}

	logger.Infow("dataset reloaded",
		"path", w.datasetPath,
		"entries", fresh.Len(),
		"skipped", fresh.Skipped())

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(fresh); err != nil {
			logger.Warnw("dataset reload callback error",
				"error", err.Error())
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching for dataset changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

package dev

import (
	"context"
	"os"
	"sync"
	"time"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Files are the individual files to watch.
	Files []string

	// Interval is the poll interval (default 200ms).
	Interval time.Duration
}

// Watcher polls a fixed set of files for modification.
type Watcher struct {
	config     WatcherConfig
	onChange   func(path string)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a watcher over the configured files.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 200 * time.Millisecond
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback invoked with the path of each changed file.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scan(false)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan compares modification times against the last pass and, when
// report is set, invokes the callback for each changed file.
func (w *Watcher) scan(report bool) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	for _, path := range w.config.Files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		w.mu.Lock()
		last, seen := w.timestamps[path]
		modTime := info.ModTime()
		changed := !seen || modTime.After(last)
		if changed {
			w.timestamps[path] = modTime
		}
		w.mu.Unlock()

		if changed && seen && report && callback != nil {
			callback(path)
		}
	}
}

// Package watch notifies when answer sheets on disk change.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op represents the kind of change observed on a sheet
type Op int

const (
	// SheetChanged indicates the sheet was created or written
	SheetChanged Op = iota
	// SheetRemoved indicates the sheet was removed or renamed away
	SheetRemoved
)

// String returns a human-readable representation of the operation
func (op Op) String() string {
	switch op {
	case SheetChanged:
		return "changed"
	case SheetRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is one debounced change to a watched sheet
type Event struct {
	Path      string    // Path as given to New
	Op        Op        // Type of change
	Timestamp time.Time // When the event was emitted
}

// DefaultDebounceDelay is the default delay for coalescing rapid writes
const DefaultDebounceDelay = 100 * time.Millisecond

// SheetWatcher watches a fixed set of sheet files.
// Parent directories are watched so editors that replace files on save
// are still observed.
type SheetWatcher struct {
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	paths   map[string]string // absolute path -> path as given

	mu            sync.Mutex
	debounceDelay time.Duration
	debounceMap   map[string]*time.Timer
	closed        bool
}

// New creates a SheetWatcher for the given sheet paths
func New(paths []string) (*SheetWatcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no sheets to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	sw := &SheetWatcher{
		watcher:       watcher,
		events:        make(chan Event, 100),
		errors:        make(chan error, 10),
		done:          make(chan struct{}),
		paths:         make(map[string]string, len(paths)),
		debounceDelay: DefaultDebounceDelay,
		debounceMap:   make(map[string]*time.Timer),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		sw.paths[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go sw.processEvents()

	return sw, nil
}

// processEvents converts fsnotify events until Close is called
func (sw *SheetWatcher) processEvents() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handleEvent(event)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case sw.errors <- err:
			default:
				// Error channel full, drop the error
			}
		}
	}
}

func (sw *SheetWatcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}
	original, watched := sw.paths[abs]
	if !watched {
		return
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		sw.debounce(original, SheetChanged)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		sw.sendEvent(original, SheetRemoved)
	}
}

// debounce coalesces rapid writes for the same sheet
func (sw *SheetWatcher) debounce(path string, op Op) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.closed {
		return
	}

	if timer, exists := sw.debounceMap[path]; exists {
		timer.Stop()
	}

	sw.debounceMap[path] = time.AfterFunc(sw.debounceDelay, func() {
		sw.mu.Lock()
		delete(sw.debounceMap, path)
		sw.mu.Unlock()

		sw.sendEvent(path, op)
	})
}

func (sw *SheetWatcher) sendEvent(path string, op Op) {
	event := Event{
		Path:      path,
		Op:        op,
		Timestamp: time.Now(),
	}

	select {
	case sw.events <- event:
	case <-sw.done:
	default:
		// Events channel full, drop the event
	}
}

// Events returns the channel for receiving sheet events
func (sw *SheetWatcher) Events() <-chan Event {
	return sw.events
}

// Errors returns the channel for receiving watcher errors
func (sw *SheetWatcher) Errors() <-chan error {
	return sw.errors
}

// SetDebounceDelay sets the delay for coalescing rapid writes.
// It only affects writes observed after the call.
func (sw *SheetWatcher) SetDebounceDelay(delay time.Duration) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.debounceDelay = delay
}

// Close stops the watcher and releases resources
func (sw *SheetWatcher) Close() error {
	sw.mu.Lock()
	if sw.closed {
		sw.mu.Unlock()
		return nil
	}
	sw.closed = true

	for _, timer := range sw.debounceMap {
		timer.Stop()
	}
	sw.debounceMap = nil
	sw.mu.Unlock()

	close(sw.done)

	return sw.watcher.Close()
}

// Package watch reports when source files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("monkey.watch")

// DefaultDebounce collapses the burst of events an editor produces for a single save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a fixed set of files. Parent directories are watched rather than the
// files themselves so that atomic saves (write to temp, rename over) are still seen.
type Watcher struct {
	w        *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
}

func New(paths []string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &Watcher{w: w, files: make(map[string]struct{}, len(paths)), debounce: debounce}
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
		}
		fw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
		}
	}
	return fw, nil
}

// Run calls onChange with the absolute path of each watched file after it is written or
// recreated. Calls happen on Run's goroutine, one at a time. Run returns nil when ctx is
// done, or the first watcher error.
func (fw *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	d := newDebouncer(fw.debounce)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if _, watched := fw.files[path]; !watched {
				continue
			}
			log.Debugf("%s: %s", ev.Op, path)
			d.touch(path)
		case f := <-d.fired:
			if d.take(f) {
				onChange(f.path)
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

type firing struct {
	path string
	gen  uint64
}

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
}

// debouncer holds one timer per path. Every touch starts a new generation; a timer that
// fired for an older generation is discarded by take, so a burst yields one change.
// It is used from a single goroutine; only the timer callbacks run elsewhere.
type debouncer struct {
	delay   time.Duration
	fired   chan firing
	stopped chan struct{}
	pending map[string]pendingTimer
	gen     uint64
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		fired:   make(chan firing),
		stopped: make(chan struct{}),
		pending: make(map[string]pendingTimer),
	}
}

func (d *debouncer) touch(path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.gen++
	f := firing{path: path, gen: d.gen}
	d.pending[path] = pendingTimer{
		gen: f.gen,
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.fired <- f:
			case <-d.stopped:
			}
		}),
	}
}

// take reports whether f is the latest firing for its path and clears it if so.
func (d *debouncer) take(f firing) bool {
	p, ok := d.pending[f.path]
	if !ok || p.gen != f.gen {
		return false
	}
	delete(d.pending, f.path)
	return true
}

// stop releases blocked timer callbacks and cancels the rest.
func (d *debouncer) stop() {
	close(d.stopped)
	for _, p := range d.pending {
		p.timer.Stop()
	}
}

func (fw *Watcher) Close() error {
	return fw.w.Close()
}

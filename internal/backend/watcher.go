package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/menu"
)

// Event conveys a reloaded menu definition or the error that prevented it.
type Event struct {
	Path       string
	Definition *menu.Definition
	ModTime    time.Time
	Err        error
}

// Watcher polls a definition file at a fixed interval and publishes an event
// whenever its modification time changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     func(string) (*menu.Definition, error)

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path. The file's current state counts as
// seen: only later changes are published.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     menu.LoadDefinition,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.startDefinitionPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startDefinitionPoller() {
	settle := newSettle(250*time.Millisecond, w.modTime)
	last := w.modTime()
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (Event, bool) {
		mod := w.modTime()
		if mod.Equal(last) {
			return Event{}, false
		}
		mod, ok := settle.wait(ctx, mod)
		if !ok {
			return Event{}, false
		}
		last = mod
		def, err := w.load(w.path)
		return Event{Path: w.path, Definition: def, ModTime: mod, Err: err}, true
	})
}

func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func (w *Watcher) poll(check func(context.Context) (Event, bool)) {
	defer w.wg.Done()

	emit := func() bool {
		evt, changed := check(w.ctx)
		if !changed {
			return true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDefinition(t *testing.T, path, body string, mod time.Time) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0o644); err != nil {
		t.Fatalf("write definition: %v", err)
	}
	if err := os.Chtimes(tmp, mod, mod); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename definition: %v", err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reload event")
	}
	return Event{}
}

func TestWatcherPublishesReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	base := time.Unix(1_700_000_000, 0)
	writeDefinition(t, path, "items:\n  - path: Copy\n", base)

	w := NewWatcher(path, 10*time.Millisecond)
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	writeDefinition(t, path, "items:\n  - path: Copy\n  - path: Edit/Paste\n", base.Add(time.Minute))
	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected reload error: %v", evt.Err)
	}
	if evt.Definition == nil || len(evt.Definition.Items) != 2 {
		t.Fatalf("expected reloaded definition with 2 items, got %#v", evt.Definition)
	}
	if !evt.ModTime.Equal(base.Add(time.Minute)) {
		t.Fatalf("expected mod time %v, got %v", base.Add(time.Minute), evt.ModTime)
	}

	writeDefinition(t, path, "items: [\n", base.Add(2*time.Minute))
	evt = nextEvent(t, w)
	if evt.Err == nil || evt.Definition != nil {
		t.Fatalf("expected reload error, got %#v", evt)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeDefinition(t, path, "items:\n  - path: Copy\n", time.Unix(1_700_000_000, 0))
	w := NewWatcher(path, 10*time.Millisecond)
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected no events after stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("expected events channel to close")
	}
}

func TestSettleWaitsForQuietFile(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	stats := []time.Time{base.Add(time.Second), base.Add(2 * time.Second), base.Add(2 * time.Second)}
	calls := 0
	s := &settle{
		quiet: time.Millisecond,
		stat: func() time.Time {
			mod := stats[calls]
			calls++
			return mod
		},
		sleep: func(context.Context, time.Duration) bool { return true },
	}
	mod, ok := s.wait(context.Background(), base)
	if !ok {
		t.Fatalf("expected settle to succeed")
	}
	if !mod.Equal(base.Add(2 * time.Second)) {
		t.Fatalf("expected last stable mtime, got %v", mod)
	}
	if calls != 3 {
		t.Fatalf("expected 3 stats, got %d", calls)
	}
}

func TestSettleStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSettle(time.Hour, func() time.Time { return time.Time{} })
	if _, ok := s.wait(ctx, time.Time{}); ok {
		t.Fatalf("expected cancelled settle to report false")
	}
	var disabled *settle
	if _, ok := disabled.wait(ctx, time.Time{}); !ok {
		t.Fatalf("expected nil settle to pass through")
	}
}

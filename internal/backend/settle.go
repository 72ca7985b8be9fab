package backend

import (
	"context"
	"time"
)

const maxSettleRounds = 8

// settle holds back a reload until the file has stopped changing, so an
// editor that writes in several steps produces one event.
type settle struct {
	quiet time.Duration
	stat  func() time.Time
	sleep func(context.Context, time.Duration) bool
}

func newSettle(quiet time.Duration, stat func() time.Time) *settle {
	return &settle{quiet: quiet, stat: stat, sleep: sleepCtx}
}

// wait returns the modification time once two stats a quiet period apart
// agree. It gives up after maxSettleRounds and reports false when ctx ends.
func (s *settle) wait(ctx context.Context, seen time.Time) (time.Time, bool) {
	if s == nil || s.quiet <= 0 {
		return seen, true
	}
	for i := 0; i < maxSettleRounds; i++ {
		if !s.sleep(ctx, s.quiet) {
			return seen, false
		}
		mod := s.stat()
		if mod.Equal(seen) {
			return mod, true
		}
		seen = mod
	}
	return seen, true
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

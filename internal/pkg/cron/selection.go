package cron

import (
	"context"
	"log/slog"
	"time"
)

// SessionSweeper drops board sessions whose selection state has gone idle.
type SessionSweeper interface {
	Sweep() int
	SessionCount() int
}

// RegisterSelectionSweep schedules the idle-session sweep.
func RegisterSelectionSweep(s *Scheduler, tracker SessionSweeper, interval time.Duration) {
	s.AddJob("selection_session_sweep", interval, func(ctx context.Context) error {
		removed := tracker.Sweep()
		if removed > 0 {
			slog.Info("Swept idle board sessions", "removed", removed, "remaining", tracker.SessionCount())
		}
		return nil
	})
}

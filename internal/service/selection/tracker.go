package selection

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/selection"
)

// Tracker keeps one selection state per board session. Sessions the UI
// abandons are swept after an idle timeout by the cron job.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*session
	idleTTL  time.Duration
	now      func() time.Time
}

type session struct {
	state   selection.State
	touched time.Time
}

func NewTracker(idleTTL time.Duration) *Tracker {
	return &Tracker{
		sessions: make(map[string]*session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (t *Tracker) get(sessionID string) *session {
	s, ok := t.sessions[sessionID]
	if !ok {
		s = &session{state: selection.NewState()}
		t.sessions[sessionID] = s
	}
	s.touched = t.now()
	return s
}

// State returns a copy-safe view of the session's current selection.
func (t *Tracker) State(sessionID string) selection.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(sessionID).state
}

// ToggleSlot applies a slot click. Selecting a slot clears the task set (the
// UI-level exclusivity convention lives here, not in the selection state).
func (t *Tracker) ToggleSlot(sessionID string, ref selection.SlotRef, multi bool) selection.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(sessionID)
	s.state = s.state.ToggleSlot(ref, multi).ClearTasks()
	return s.state
}

// ToggleTask applies a task click; clears the slot set.
func (t *Tracker) ToggleTask(sessionID string, assignmentID string, multi bool) selection.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(sessionID)
	s.state = s.state.ToggleTask(assignmentID, multi).ClearSlots()
	return s.state
}

// ToggleDay applies a day-header click; clears both the task and slot sets.
func (t *Tracker) ToggleDay(sessionID string, date string, multi bool) selection.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(sessionID)
	s.state = s.state.ToggleDay(date, multi).ClearTasks().ClearSlots()
	return s.state
}

// Clear empties every set for the session.
func (t *Tracker) Clear(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.get(sessionID)
	s.state = selection.NewState()
}

// SnapshotTasks captures the task selection for an async bulk action.
func (t *Tracker) SnapshotTasks(sessionID, triggerID string) selection.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(sessionID).state.SnapshotTasks(triggerID, t.now())
}

// SnapshotSlots captures the slot selection for an async bulk action.
func (t *Tracker) SnapshotSlots(sessionID string, ref selection.SlotRef) selection.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(sessionID).state.SnapshotSlots(ref, t.now())
}

// SnapshotDays captures the day selection for an async bulk action.
func (t *Tracker) SnapshotDays(sessionID, date string) selection.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(sessionID).state.SnapshotDays(date, t.now())
}

// Sweep drops sessions idle longer than the TTL and returns how many were
// removed.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	cutoff := t.now().Add(-t.idleTTL)
	removed := 0
	for id, s := range t.sessions {
		if s.touched.Before(cutoff) {
			delete(t.sessions, id)
			removed++
		}
	}
	return removed
}

// SessionCount returns the number of live sessions.
func (t *Tracker) SessionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

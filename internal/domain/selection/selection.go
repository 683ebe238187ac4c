// Package selection holds the board's multi-select state: three independent
// sets (slots, tasks, days) with single/multi toggle semantics. The sets do
// not enforce exclusivity against each other; the caller applies the UI-level
// clearing convention.
package selection

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
)

// SlotRef identifies one half-day slot cell on the board.
type SlotRef struct {
	EmployeeID string            `json:"employee_id"`
	Date       string            `json:"date"`
	Slot       calendar.SlotKind `json:"slot"`
}

// State is the three selection sets. Zero value is an empty selection.
type State struct {
	Slots map[SlotRef]struct{}
	Tasks map[string]struct{}
	Days  map[string]struct{}
}

func NewState() State {
	return State{
		Slots: make(map[SlotRef]struct{}),
		Tasks: make(map[string]struct{}),
		Days:  make(map[string]struct{}),
	}
}

// toggleSingle implements the no-modifier click: if item is the sole selected
// entry the set empties, otherwise the set becomes {item}.
func toggleSingle[K comparable](set map[K]struct{}, item K) map[K]struct{} {
	if len(set) == 1 {
		if _, ok := set[item]; ok {
			return make(map[K]struct{})
		}
	}
	return map[K]struct{}{item: {}}
}

// toggleMulti implements the modifier click: membership flips, the rest of
// the set is untouched.
func toggleMulti[K comparable](set map[K]struct{}, item K) map[K]struct{} {
	out := make(map[K]struct{}, len(set)+1)
	for k := range set {
		out[k] = struct{}{}
	}
	if _, ok := out[item]; ok {
		delete(out, item)
	} else {
		out[item] = struct{}{}
	}
	return out
}

func toggle[K comparable](set map[K]struct{}, item K, multi bool) map[K]struct{} {
	if multi {
		return toggleMulti(set, item)
	}
	return toggleSingle(set, item)
}

// ToggleSlot returns the state after a slot click.
func (s State) ToggleSlot(ref SlotRef, multi bool) State {
	s.Slots = toggle(s.Slots, ref, multi)
	return s
}

// ToggleTask returns the state after a task click.
func (s State) ToggleTask(assignmentID string, multi bool) State {
	s.Tasks = toggle(s.Tasks, assignmentID, multi)
	return s
}

// ToggleDay returns the state after a day-header click.
func (s State) ToggleDay(date string, multi bool) State {
	s.Days = toggle(s.Days, date, multi)
	return s
}

func (s State) ClearSlots() State {
	s.Slots = make(map[SlotRef]struct{})
	return s
}

func (s State) ClearTasks() State {
	s.Tasks = make(map[string]struct{})
	return s
}

func (s State) ClearDays() State {
	s.Days = make(map[string]struct{})
	return s
}

// Snapshot is an immutable copy of a selection set taken when an async
// action (bulk edit, multi-paste) starts, so a concurrent selection change
// cannot redirect the in-flight action.
type Snapshot struct {
	Slots   []SlotRef `json:"slots,omitempty"`
	Tasks   []string  `json:"tasks,omitempty"`
	Days    []string  `json:"days,omitempty"`
	TakenAt time.Time `json:"taken_at"`
}

// SnapshotTasks captures the task selection for an action triggered on
// triggerID. If the trigger is part of the selection the whole selection is
// captured; otherwise the action targets only the trigger.
func (s State) SnapshotTasks(triggerID string, now time.Time) Snapshot {
	snap := Snapshot{TakenAt: now}
	if _, ok := s.Tasks[triggerID]; ok {
		for id := range s.Tasks {
			snap.Tasks = append(snap.Tasks, id)
		}
	} else {
		snap.Tasks = []string{triggerID}
	}
	return snap
}

// SnapshotSlots captures the slot selection for an action triggered on ref,
// with the same member-or-singleton rule as SnapshotTasks.
func (s State) SnapshotSlots(ref SlotRef, now time.Time) Snapshot {
	snap := Snapshot{TakenAt: now}
	if _, ok := s.Slots[ref]; ok {
		for r := range s.Slots {
			snap.Slots = append(snap.Slots, r)
		}
	} else {
		snap.Slots = []SlotRef{ref}
	}
	return snap
}

// SnapshotDays captures the day selection for an action triggered on date.
func (s State) SnapshotDays(date string, now time.Time) Snapshot {
	snap := Snapshot{TakenAt: now}
	if _, ok := s.Days[date]; ok {
		for d := range s.Days {
			snap.Days = append(snap.Days, d)
		}
	} else {
		snap.Days = []string{date}
	}
	return snap
}

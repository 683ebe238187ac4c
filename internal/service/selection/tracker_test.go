package selection

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/selection"
	"github.com/stretchr/testify/assert"
)

func TestTaskClickClearsSlotSet(t *testing.T) {
	tr := NewTracker(time.Hour)
	ref := selection.SlotRef{EmployeeID: "e1", Date: "2024-06-12", Slot: calendar.SlotMorning}

	tr.ToggleSlot("s1", ref, false)
	state := tr.ToggleTask("s1", "t1", false)

	assert.Empty(t, state.Slots)
	assert.Len(t, state.Tasks, 1)
}

func TestDayClickClearsTaskAndSlotSets(t *testing.T) {
	tr := NewTracker(time.Hour)
	ref := selection.SlotRef{EmployeeID: "e1", Date: "2024-06-12", Slot: calendar.SlotAfternoon}

	tr.ToggleSlot("s1", ref, true)
	tr.ToggleTask("s1", "t1", true)
	state := tr.ToggleDay("s1", "2024-06-12", false)

	assert.Empty(t, state.Slots)
	assert.Empty(t, state.Tasks)
	assert.Len(t, state.Days, 1)
}

func TestSessionsAreIndependent(t *testing.T) {
	tr := NewTracker(time.Hour)
	tr.ToggleTask("alice", "t1", false)
	tr.ToggleTask("bob", "t2", false)

	_, aliceHasT1 := tr.State("alice").Tasks["t1"]
	_, bobHasT1 := tr.State("bob").Tasks["t1"]
	assert.True(t, aliceHasT1)
	assert.False(t, bobHasT1)
}

func TestSnapshotInsulatedFromLaterToggles(t *testing.T) {
	tr := NewTracker(time.Hour)
	tr.ToggleTask("s1", "t1", true)
	tr.ToggleTask("s1", "t2", true)

	snap := tr.SnapshotTasks("s1", "t1")
	tr.Clear("s1")
	tr.ToggleTask("s1", "t9", false)

	assert.ElementsMatch(t, []string{"t1", "t2"}, snap.Tasks)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	tr := NewTracker(time.Minute)
	current := time.Now()
	tr.now = func() time.Time { return current }

	tr.ToggleTask("stale", "t1", false)
	current = current.Add(2 * time.Minute)
	tr.ToggleTask("fresh", "t2", false)

	removed := tr.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, tr.SessionCount())
}

package selection

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
)

func TestSingleClickReplacesSelection(t *testing.T) {
	s := NewState()
	s = s.ToggleTask("t1", false)
	assert.Len(t, s.Tasks, 1)

	s = s.ToggleTask("t2", false)
	assert.Len(t, s.Tasks, 1)
	_, ok := s.Tasks["t2"]
	assert.True(t, ok)
}

func TestSingleClickOnSoleSelectedClears(t *testing.T) {
	s := NewState().ToggleTask("t1", false)
	s = s.ToggleTask("t1", false)
	assert.Empty(t, s.Tasks)
}

func TestSingleClickOnMemberOfMultiReplacesWithSingleton(t *testing.T) {
	s := NewState().ToggleTask("t1", true)
	s = s.ToggleTask("t2", true)
	// Plain click on a member of a multi-selection collapses to that item.
	s = s.ToggleTask("t1", false)
	assert.Len(t, s.Tasks, 1)
	_, ok := s.Tasks["t1"]
	assert.True(t, ok)
}

func TestModifierToggleSymmetry(t *testing.T) {
	ref := SlotRef{EmployeeID: "e1", Date: "2024-06-12", Slot: calendar.SlotMorning}
	s := NewState().ToggleSlot(ref, true)

	before := s
	other := SlotRef{EmployeeID: "e2", Date: "2024-06-12", Slot: calendar.SlotAfternoon}
	s = s.ToggleSlot(other, true)
	s = s.ToggleSlot(other, true)

	assert.Equal(t, before.Slots, s.Slots, "toggling the same item twice should restore the set")
}

func TestDayToggleIndependentOfOtherSets(t *testing.T) {
	s := NewState().ToggleTask("t1", true)
	s = s.ToggleDay("2024-06-12", true)

	// The tracker itself does not clear other sets; that is the caller's rule.
	assert.Len(t, s.Tasks, 1)
	assert.Len(t, s.Days, 1)
}

func TestSnapshotWholeSelectionWhenTriggerIsMember(t *testing.T) {
	now := time.Now()
	s := NewState().ToggleTask("t1", true)
	s = s.ToggleTask("t2", true)

	snap := s.SnapshotTasks("t1", now)
	assert.ElementsMatch(t, []string{"t1", "t2"}, snap.Tasks)
}

func TestSnapshotSingletonWhenTriggerOutsideSelection(t *testing.T) {
	now := time.Now()
	s := NewState().ToggleTask("t1", true)

	snap := s.SnapshotTasks("t9", now)
	assert.Equal(t, []string{"t9"}, snap.Tasks)
}

func TestSnapshotImmuneToLaterChanges(t *testing.T) {
	now := time.Now()
	s := NewState().ToggleTask("t1", true)
	snap := s.SnapshotTasks("t1", now)

	s = s.ToggleTask("t1", true)
	s = s.ToggleTask("t5", true)

	assert.Equal(t, []string{"t1"}, snap.Tasks, "snapshot must not track live selection state")
}

func TestSnapshotSlotsAndDays(t *testing.T) {
	now := time.Now()
	ref := SlotRef{EmployeeID: "e1", Date: "2024-06-12", Slot: calendar.SlotMorning}
	s := NewState().ToggleSlot(ref, true)

	slotSnap := s.SnapshotSlots(ref, now)
	assert.Equal(t, []SlotRef{ref}, slotSnap.Slots)

	daySnap := s.SnapshotDays("2024-06-14", now)
	assert.Equal(t, []string{"2024-06-14"}, daySnap.Days)
}

package leave

import (
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflictsHolidayAcrossBoard(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	var employeeIDs []string
	var placements []schedule.TaskPlacement
	names := make(map[string]string)
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("emp-%d", i)
		employeeIDs = append(employeeIDs, id)
		names[id] = fmt.Sprintf("Employee %d", i)
		placements = append(placements, schedule.TaskPlacement{
			AssignmentID: fmt.Sprintf("a-%d", i),
			EmployeeID:   id,
			Date:         date,
			Slot:         calendar.SlotMorning,
			Hours:        2,
			Title:        "Standup prep",
		})
	}
	grid := schedule.BuildGrid(employeeIDs, []time.Time{date}, placements)

	conflicts := DetectConflicts(grid, names, []time.Time{date}, employeeIDs, leave.DurationFullDay, nil)

	require.Len(t, conflicts, 5)
	for _, c := range conflicts {
		assert.Equal(t, names[c.EmployeeID], c.EmployeeName)
		assert.Equal(t, "Standup prep", c.TaskTitle)
	}
}

func TestDetectConflictsHalfDayIgnoresOppositeSlot(t *testing.T) {
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	placements := []schedule.TaskPlacement{
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotAfternoon, Hours: 3, Title: "Afternoon task"},
	}
	grid := schedule.BuildGrid([]string{"emp-1"}, []time.Time{date}, placements)
	morning := calendar.SlotMorning

	conflicts := DetectConflicts(grid, nil, []time.Time{date}, []string{"emp-1"}, leave.DurationHalfDay, &morning)
	assert.Empty(t, conflicts)

	afternoon := calendar.SlotAfternoon
	conflicts = DetectConflicts(grid, nil, []time.Time{date}, []string{"emp-1"}, leave.DurationHalfDay, &afternoon)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "a1", conflicts[0].AssignmentID)
	assert.Equal(t, calendar.SlotAfternoon, conflicts[0].Slot)
}

func TestDetectConflictsFullDayImplicatesBothSlots(t *testing.T) {
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	placements := []schedule.TaskPlacement{
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, Hours: 2},
		{AssignmentID: "a2", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotAfternoon, Hours: 2},
	}
	grid := schedule.BuildGrid([]string{"emp-1"}, []time.Time{date}, placements)

	conflicts := DetectConflicts(grid, nil, []time.Time{date}, []string{"emp-1"}, leave.DurationFullDay, nil)

	require.Len(t, conflicts, 2)
	got := map[string]bool{}
	for _, c := range conflicts {
		got[c.AssignmentID] = true
	}
	assert.True(t, got["a1"])
	assert.True(t, got["a2"])
}

func TestDetectConflictsEmptyGrid(t *testing.T) {
	date := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	grid := schedule.BuildGrid([]string{"emp-1"}, []time.Time{date}, nil)

	conflicts := DetectConflicts(grid, nil, []time.Time{date}, []string{"emp-1"}, leave.DurationFullDay, nil)
	assert.Empty(t, conflicts)
}

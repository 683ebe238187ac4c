package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var overlayDate = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func baseGrid(t *testing.T) schedule.Grid {
	t.Helper()
	placements := []schedule.TaskPlacement{
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: overlayDate, Slot: calendar.SlotMorning, Hours: 2, Title: "Design review"},
		{AssignmentID: "a2", EmployeeID: "emp-1", Date: overlayDate, Slot: calendar.SlotAfternoon, Hours: 3, Title: "Sprint work"},
	}
	return schedule.BuildGrid([]string{"emp-1"}, []time.Time{overlayDate}, placements)
}

func TestMergeOverlayHolidayClearsDay(t *testing.T) {
	grid := baseGrid(t)
	holidays := []leave.Holiday{{ID: "h1", Date: overlayDate, Name: "May Day"}}

	merged := MergeOverlay(grid, nil, holidays)

	cell, ok := merged.Cell("emp-1", overlayDate)
	require.True(t, ok)
	assert.True(t, cell.IsHoliday)
	require.NotNil(t, cell.HolidayName)
	assert.Equal(t, "May Day", *cell.HolidayName)
	assert.Nil(t, cell.Leave)
	assert.Empty(t, cell.Morning.Placements)
	assert.Empty(t, cell.Afternoon.Placements)
}

func TestMergeOverlayFullDayLeave(t *testing.T) {
	grid := baseGrid(t)
	records := []leave.Record{
		{ID: "l1", EmployeeID: "emp-1", Date: overlayDate, Type: "annual", Duration: leave.DurationFullDay},
	}

	merged := MergeOverlay(grid, records, nil)

	cell, ok := merged.Cell("emp-1", overlayDate)
	require.True(t, ok)
	assert.False(t, cell.IsHoliday)
	require.NotNil(t, cell.Leave)
	assert.Equal(t, "l1", cell.Leave.ID)
	assert.Empty(t, cell.Morning.Placements)
	assert.Empty(t, cell.Afternoon.Placements)
	assert.Nil(t, cell.Morning.Leave)
	assert.Nil(t, cell.Afternoon.Leave)
}

func TestMergeOverlayHalfDayKeepsPlacements(t *testing.T) {
	grid := baseGrid(t)
	slot := calendar.SlotAfternoon
	records := []leave.Record{
		{ID: "l2", EmployeeID: "emp-1", Date: overlayDate, Type: "sick", Duration: leave.DurationHalfDay, Slot: &slot},
	}

	merged := MergeOverlay(grid, records, nil)

	cell, ok := merged.Cell("emp-1", overlayDate)
	require.True(t, ok)
	require.NotNil(t, cell.Afternoon.Leave)
	assert.Equal(t, "l2", cell.Afternoon.Leave.ID)
	assert.Nil(t, cell.Morning.Leave)
	// The merge only marks the slot; placement removal belongs to the
	// conflict-aware write path.
	assert.Len(t, cell.Morning.Placements, 1)
	assert.Len(t, cell.Afternoon.Placements, 1)
}

func TestMergeOverlayHolidayBeatsFullDay(t *testing.T) {
	grid := baseGrid(t)
	records := []leave.Record{
		{ID: "l1", EmployeeID: "emp-1", Date: overlayDate, Type: "annual", Duration: leave.DurationFullDay},
	}
	holidays := []leave.Holiday{{ID: "h1", Date: overlayDate, Name: "Founding Day"}}

	merged := MergeOverlay(grid, records, holidays)

	cell, ok := merged.Cell("emp-1", overlayDate)
	require.True(t, ok)
	assert.True(t, cell.IsHoliday)
	assert.Nil(t, cell.Leave)
}

func TestMergeOverlayDoesNotMutateBase(t *testing.T) {
	grid := baseGrid(t)
	holidays := []leave.Holiday{{ID: "h1", Date: overlayDate, Name: "May Day"}}

	_ = MergeOverlay(grid, nil, holidays)

	cell, ok := grid.Cell("emp-1", overlayDate)
	require.True(t, ok)
	assert.False(t, cell.IsHoliday)
	assert.Len(t, cell.Morning.Placements, 1)
	assert.Len(t, cell.Afternoon.Placements, 1)
}

package schedule

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridCreatesEveryCell(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	grid := BuildGrid([]string{"emp-1", "emp-2"}, dates, nil)

	require.Len(t, grid, 2)
	for _, id := range []string{"emp-1", "emp-2"} {
		for _, d := range dates {
			cell, ok := grid.Cell(id, d)
			require.True(t, ok, "missing cell for %s on %s", id, calendar.DateKey(d))
			assert.Equal(t, id, cell.EmployeeID)
			assert.Empty(t, cell.Morning.Placements)
			assert.Empty(t, cell.Afternoon.Placements)
		}
	}
}

func TestBuildGridOrdersSlotsWithoutRepositioning(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	placements := []TaskPlacement{
		{AssignmentID: "a2", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, ColumnStart: 5, Hours: 2},
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, ColumnStart: 1, Hours: 2},
		{AssignmentID: "a3", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotAfternoon, ColumnStart: 3, Hours: 1},
	}
	grid := BuildGrid([]string{"emp-1"}, []time.Time{date}, placements)

	cell, ok := grid.Cell("emp-1", date)
	require.True(t, ok)

	morning := cell.Morning.Placements
	require.Len(t, morning, 2)
	assert.Equal(t, "a1", morning[0].AssignmentID)
	assert.Equal(t, 1, morning[0].ColumnStart, "stored position must survive assembly")
	assert.Equal(t, "a2", morning[1].AssignmentID)
	assert.Equal(t, 5, morning[1].ColumnStart, "stored position must survive assembly")

	afternoon := cell.Afternoon.Placements
	require.Len(t, afternoon, 1)
	assert.Equal(t, 3, afternoon[0].ColumnStart)
}

func TestBuildGridKeepsExplicitDropPosition(t *testing.T) {
	// A task dropped at column 4 renders at column 4 on the next fetch; the
	// grid never compacts it back to 0.
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	placements := []TaskPlacement{
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, ColumnStart: 4, Hours: 2},
	}
	grid := BuildGrid([]string{"emp-1"}, []time.Time{date}, placements)

	cell, ok := grid.Cell("emp-1", date)
	require.True(t, ok)
	require.Len(t, cell.Morning.Placements, 1)
	assert.Equal(t, 4, cell.Morning.Placements[0].ColumnStart)
}

func TestBuildGridDropsUnknownKeys(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	placements := []TaskPlacement{
		{AssignmentID: "a1", EmployeeID: "emp-unknown", Date: date, Slot: calendar.SlotMorning, Hours: 2},
	}
	grid := BuildGrid([]string{"emp-1"}, []time.Time{date}, placements)

	cell, ok := grid.Cell("emp-1", date)
	require.True(t, ok)
	assert.Empty(t, cell.Morning.Placements)
	_, ok = grid.Cell("emp-unknown", date)
	assert.False(t, ok)
}

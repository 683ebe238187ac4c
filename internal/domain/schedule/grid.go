package schedule

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
)

// BuildGrid assembles the base assignment grid for the given employees and
// dates from a flat placement list. Every (employee, date) cell exists in the
// result even when empty, so overlay merging and rendering never special-case
// missing cells.
func BuildGrid(employeeIDs []string, dates []time.Time, placements []TaskPlacement) Grid {
	grid := make(Grid, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		row := make(map[string]DayAssignment, len(dates))
		for _, d := range dates {
			row[calendar.DateKey(d)] = EmptyCell(employeeID, d)
		}
		grid[employeeID] = row
	}

	for _, p := range placements {
		row, ok := grid[p.EmployeeID]
		if !ok {
			continue
		}
		key := calendar.DateKey(p.Date)
		cell, ok := row[key]
		if !ok {
			continue
		}
		if p.Slot == calendar.SlotAfternoon {
			cell.Afternoon.Placements = append(cell.Afternoon.Placements, p)
		} else {
			cell.Morning.Placements = append(cell.Morning.Placements, p)
		}
		row[key] = cell
	}

	// Placements render in position order. Explicit drop positions are
	// authoritative and must survive a fetch; compaction happens only on the
	// delete/move paths.
	for _, row := range grid {
		for key, cell := range row {
			SortPlacements(cell.Morning.Placements)
			SortPlacements(cell.Afternoon.Placements)
			row[key] = cell
		}
	}
	return grid
}

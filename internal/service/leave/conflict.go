package leave

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
)

// DetectConflicts inspects the base grid for placements a leave/holiday write
// over the given keys would destroy. Full-day duration implicates both slots,
// half-day only the named one; the opposite slot is never reported.
func DetectConflicts(
	grid schedule.Grid,
	employeeNames map[string]string,
	dates []time.Time,
	employeeIDs []string,
	duration leave.Duration,
	slot *calendar.SlotKind,
) []leave.Conflict {
	slots := []calendar.SlotKind{calendar.SlotMorning, calendar.SlotAfternoon}
	if duration == leave.DurationHalfDay && slot != nil {
		slots = []calendar.SlotKind{*slot}
	}

	var conflicts []leave.Conflict
	for _, date := range dates {
		for _, employeeID := range employeeIDs {
			cell, ok := grid.Cell(employeeID, date)
			if !ok {
				continue
			}
			for _, kind := range slots {
				for _, p := range cell.SlotFor(kind).Placements {
					conflicts = append(conflicts, leave.Conflict{
						AssignmentID: p.AssignmentID,
						EmployeeID:   employeeID,
						EmployeeName: employeeNames[employeeID],
						Date:         date,
						Slot:         kind,
						TaskTitle:    p.Title,
					})
				}
			}
		}
	}
	return conflicts
}

package leave

import (
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
)

// MergeOverlay combines a base assignment grid with leave and holiday records
// into the grid the board renders. The input grid is not mutated; the merge
// returns a fresh snapshot.
//
// Precedence per cell is fixed: Holiday > full-day leave > half-day leave >
// plain assignment. Holiday and full-day cells render task-free, but the
// merge itself never deletes anything from the base state: clearing a
// blocking record and re-merging restores whatever placements still exist.
// A half-day merge only adds the slot marker; tasks are cleared solely by the
// conflict-aware write path.
func MergeOverlay(grid schedule.Grid, records []leave.Record, holidays []leave.Holiday) schedule.Grid {
	out := grid.Clone()

	holidayByDate := make(map[string]leave.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDate[calendar.DateKey(h.Date)] = h
	}

	fullDay := make(map[string]map[string]leave.Record)
	halfDay := make(map[string]map[string][]leave.Record)
	for _, rec := range records {
		key := calendar.DateKey(rec.Date)
		if rec.Duration == leave.DurationFullDay {
			if fullDay[rec.EmployeeID] == nil {
				fullDay[rec.EmployeeID] = make(map[string]leave.Record)
			}
			fullDay[rec.EmployeeID][key] = rec
		} else {
			if halfDay[rec.EmployeeID] == nil {
				halfDay[rec.EmployeeID] = make(map[string][]leave.Record)
			}
			halfDay[rec.EmployeeID][key] = append(halfDay[rec.EmployeeID][key], rec)
		}
	}

	for employeeID, row := range out {
		for key, cell := range row {
			if h, ok := holidayByDate[key]; ok {
				name := h.Name
				cell.IsHoliday = true
				cell.HolidayName = &name
				cell.Leave = nil
				cell.Morning = clearedSlot(cell.Morning)
				cell.Afternoon = clearedSlot(cell.Afternoon)
				row[key] = cell
				continue
			}

			if rec, ok := fullDay[employeeID][key]; ok {
				rec := rec
				cell.Leave = &rec
				cell.Morning = clearedSlot(cell.Morning)
				cell.Afternoon = clearedSlot(cell.Afternoon)
				row[key] = cell
				continue
			}

			if recs, ok := halfDay[employeeID][key]; ok {
				for _, rec := range recs {
					rec := rec
					if rec.Slot != nil && *rec.Slot == calendar.SlotAfternoon {
						cell.Afternoon.Leave = &rec
					} else {
						cell.Morning.Leave = &rec
					}
				}
				row[key] = cell
			}
		}
	}
	return out
}

// clearedSlot strips tasks and any slot-level leave marker; used when the day
// level carries the blocking state.
func clearedSlot(s schedule.Slot) schedule.Slot {
	s.Placements = nil
	s.Leave = nil
	return s
}

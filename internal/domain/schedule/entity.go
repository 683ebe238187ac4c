package schedule

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
)

// DefaultSlotCapacityHours is the bookable duration of one half-day slot.
const DefaultSlotCapacityHours = 4.0

// TaskPlacement is one task scheduled into a half-day slot. AssignmentID is
// the stable identity across moves; title/project/priority/status are opaque
// payload carried for the board.
type TaskPlacement struct {
	AssignmentID string
	TaskID       string
	EmployeeID   string
	Date         time.Time
	Slot         calendar.SlotKind
	ColumnStart  int
	Hours        float64
	Title        string
	Project      string
	Priority     string
	Status       string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Width is the number of grid columns the placement occupies. Fractional
// hours round up so neighbouring placements never overlap.
func (p TaskPlacement) Width() int {
	w := int(p.Hours)
	if float64(w) < p.Hours {
		w++
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Slot is a half-day scheduling unit: an ordered placement list plus an
// optional half-day leave marker. Slot-level leave and day-level leave are
// mutually exclusive.
type Slot struct {
	Kind          calendar.SlotKind
	Placements    []TaskPlacement
	CapacityHours float64
	Leave         *leave.Record
}

// BookedHours sums the hours of every placement in the slot.
func (s Slot) BookedHours() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.Hours
	}
	return total
}

// IsOverbooked reports whether booked hours exceed the slot capacity.
func (s Slot) IsOverbooked() bool {
	capacity := s.CapacityHours
	if capacity == 0 {
		capacity = DefaultSlotCapacityHours
	}
	return s.BookedHours() > capacity
}

// DayAssignment is one cell of the board grid, keyed by (employee, date).
// Day-level leave or a holiday implies both slots are task-empty and carry no
// slot-level leave: blocking state is represented once, at the day level.
type DayAssignment struct {
	EmployeeID  string
	Date        time.Time
	IsHoliday   bool
	HolidayName *string
	Leave       *leave.Record
	Morning     Slot
	Afternoon   Slot
}

// SlotFor returns the named slot of the cell.
func (d DayAssignment) SlotFor(kind calendar.SlotKind) Slot {
	if kind == calendar.SlotAfternoon {
		return d.Afternoon
	}
	return d.Morning
}

// Grid is the full board state: employeeID -> date key -> cell. All engine
// operations treat it as immutable and return a fresh grid, so the holder can
// swap whole snapshots atomically.
type Grid map[string]map[string]DayAssignment

// Cell looks up the cell for (employeeID, date), reporting whether it exists.
func (g Grid) Cell(employeeID string, date time.Time) (DayAssignment, bool) {
	row, ok := g[employeeID]
	if !ok {
		return DayAssignment{}, false
	}
	cell, ok := row[calendar.DateKey(date)]
	return cell, ok
}

// Clone deep-copies the grid, including placement slices.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for employeeID, row := range g {
		newRow := make(map[string]DayAssignment, len(row))
		for key, cell := range row {
			newRow[key] = cloneCell(cell)
		}
		out[employeeID] = newRow
	}
	return out
}

func cloneCell(cell DayAssignment) DayAssignment {
	cell.Morning = cloneSlot(cell.Morning)
	cell.Afternoon = cloneSlot(cell.Afternoon)
	if cell.Leave != nil {
		rec := *cell.Leave
		cell.Leave = &rec
	}
	if cell.HolidayName != nil {
		name := *cell.HolidayName
		cell.HolidayName = &name
	}
	return cell
}

func cloneSlot(s Slot) Slot {
	if s.Placements != nil {
		s.Placements = append([]TaskPlacement(nil), s.Placements...)
	}
	if s.Leave != nil {
		rec := *s.Leave
		s.Leave = &rec
	}
	return s
}

// SetCell returns a copy of the grid with the (employeeID, date) cell
// replaced.
func (g Grid) SetCell(cell DayAssignment) Grid {
	out := g.Clone()
	row, ok := out[cell.EmployeeID]
	if !ok {
		row = make(map[string]DayAssignment)
		out[cell.EmployeeID] = row
	}
	row[calendar.DateKey(cell.Date)] = cell
	return out
}

// EmptyCell builds a task-free cell for (employeeID, date).
func EmptyCell(employeeID string, date time.Time) DayAssignment {
	return DayAssignment{
		EmployeeID: employeeID,
		Date:       date,
		Morning:    Slot{Kind: calendar.SlotMorning, CapacityHours: DefaultSlotCapacityHours},
		Afternoon:  Slot{Kind: calendar.SlotAfternoon, CapacityHours: DefaultSlotCapacityHours},
	}
}

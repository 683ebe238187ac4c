package leave

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
)

// Duration maps to leave_duration_enum in DB
type Duration string

const (
	DurationFullDay Duration = "full_day"
	DurationHalfDay Duration = "half_day"
)

var DurationValues = []string{string(DurationFullDay), string(DurationHalfDay)}

// Record is a leave entry for one employee on one date. Half-day records name
// the slot they occupy. At most one record exists per (employee, date) for
// full-day leave, or per (employee, date, slot) for half-day leave; a new
// record for the same key supersedes the old one.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Type       string // 'annual', 'sick', 'unpaid', ...
	Duration   Duration
	Slot       *calendar.SlotKind // required iff Duration == half_day

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Holiday applies to every employee on its date. A holiday dominates and
// supersedes individual leave for that date.
type Holiday struct {
	ID   string
	Date time.Time
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Conflict describes an existing task placement that a leave/holiday write
// over its day or slot would destroy.
type Conflict struct {
	AssignmentID string            `json:"assignment_id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Date         time.Time         `json:"date"`
	Slot         calendar.SlotKind `json:"slot"`
	TaskTitle    string            `json:"task_title"`
}

package schedule

import (
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	TaskID      string  `json:"task_id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Slot        string  `json:"slot"`
	Hours       float64 `json:"hours"`
	ColumnStart *int    `json:"column_start,omitempty"`
	Title       string  `json:"title"`
	Project     string  `json:"project,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "task_id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Slot, calendar.SlotKindValues) {
		errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot must be one of morning, afternoon"})
	}
	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}
	if r.ColumnStart != nil && *r.ColumnStart < 0 {
		errs = append(errs, validator.ValidationError{Field: "column_start", Message: "column_start must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	AssignmentID string   `json:"-"`
	EmployeeID   *string  `json:"employee_id,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Slot         *string  `json:"slot,omitempty"`
	ColumnStart  *int     `json:"column_start,omitempty"`
	Hours        *float64 `json:"hours,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Priority     *string  `json:"priority,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "assignment_id is required"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Slot != nil && !validator.IsInSlice(*r.Slot, calendar.SlotKindValues) {
		errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot must be one of morning, afternoon"})
	}
	if r.ColumnStart != nil && *r.ColumnStart < 0 {
		errs = append(errs, validator.ValidationError{Field: "column_start", Message: "column_start must not be negative"})
	}
	if r.Hours != nil && *r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MoveAssignmentRequest relocates a task between slots. The drop position is
// authoritative at the destination; only the vacated slot gets repacked.
type MoveAssignmentRequest struct {
	AssignmentID string   `json:"-"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	Slot         string   `json:"slot"`
	ColumnStart  int      `json:"column_start"`
	Hours        *float64 `json:"hours,omitempty"`
}

func (r *MoveAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "assignment_id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Slot, calendar.SlotKindValues) {
		errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot must be one of morning, afternoon"})
	}
	if r.ColumnStart < 0 {
		errs = append(errs, validator.ValidationError{Field: "column_start", Message: "column_start must not be negative"})
	}
	if r.Hours != nil && *r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkPatch struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Project  *string `json:"project,omitempty"`
}

func (p BulkPatch) IsZero() bool {
	return p.Status == nil && p.Priority == nil && p.Project == nil
}

type BulkUpdateRequest struct {
	AssignmentIDs []string  `json:"assignment_ids"`
	Patch         BulkPatch `json:"patch"`
}

func (r *BulkUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.AssignmentIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "assignment_ids", Message: "assignment_ids must not be empty"})
	}
	if r.Patch.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "patch", Message: "patch must set at least one field"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GridRequest struct {
	StartDate string `json:"start_date"`
	ViewSpan  string `json:"view_span"`
	TeamID    string `json:"team_id,omitempty"`
}

func (r *GridRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.ViewSpan, calendar.ViewSpanValues) {
		errs = append(errs, validator.ValidationError{Field: "view_span", Message: "view_span must be one of day, week, biweek, month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

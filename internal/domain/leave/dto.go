package leave

import (
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

// SetLeaveRequest writes leave over one or more (date, employee) cells. The
// write path deletes conflicting assignments first (§ conflict handling), so
// the caller is expected to have previewed conflicts.
type SetLeaveRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Dates       []string `json:"dates"`
	LeaveType   string   `json:"leave_type"`
	Duration    string   `json:"duration"`
	Slot        *string  `json:"slot,omitempty"`
}

func (r *SetLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "employee_ids must not be empty"})
	}
	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must not be empty"})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must be in YYYY-MM-DD format"})
			break
		}
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	}
	if !validator.IsInSlice(r.Duration, DurationValues) {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be one of full_day, half_day"})
	}
	if r.Duration == string(DurationHalfDay) {
		if r.Slot == nil || !validator.IsInSlice(*r.Slot, calendar.SlotKindValues) {
			errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot is required for half-day leave"})
		}
	}
	if r.Duration == string(DurationFullDay) && r.Slot != nil {
		errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot must be omitted for full-day leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetHolidayRequest struct {
	Dates []string `json:"dates"`
	Name  string   `json:"name"`
}

func (r *SetHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must not be empty"})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must be in YYYY-MM-DD format"})
			break
		}
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DetectConflictsRequest previews which placements a leave/holiday write
// would destroy. Holiday previews pass every employee visible on the board.
type DetectConflictsRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Dates       []string `json:"dates"`
	Duration    string   `json:"duration"`
	Slot        *string  `json:"slot,omitempty"`
}

func (r *DetectConflictsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "employee_ids must not be empty"})
	}
	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must not be empty"})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{Field: "dates", Message: "dates must be in YYYY-MM-DD format"})
			break
		}
	}
	if !validator.IsInSlice(r.Duration, DurationValues) {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be one of full_day, half_day"})
	}
	if r.Duration == string(DurationHalfDay) {
		if r.Slot == nil || !validator.IsInSlice(*r.Slot, calendar.SlotKindValues) {
			errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot is required for half-day duration"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyResult reports the outcome of a leave/holiday write: how many
// conflicting assignments were deleted and how many deletions failed (failed
// deletions are logged and skipped, they never abort the write).
type ApplyResult struct {
	DeletedCount int `json:"deleted_count"`
	FailedCount  int `json:"failed_count"`
	RecordCount  int `json:"record_count"`
}

type ClearBlockingResult struct {
	DeletedCount int64 `json:"deleted_count"`
}

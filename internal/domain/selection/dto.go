package selection

import (
	"sort"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

// StateResponse is the wire view of a selection state. The sets are sorted so
// repeated reads of the same state produce identical payloads.
type StateResponse struct {
	Slots []SlotRef `json:"slots"`
	Tasks []string  `json:"tasks"`
	Days  []string  `json:"days"`
}

func NewStateResponse(s State) StateResponse {
	resp := StateResponse{
		Slots: make([]SlotRef, 0, len(s.Slots)),
		Tasks: make([]string, 0, len(s.Tasks)),
		Days:  make([]string, 0, len(s.Days)),
	}
	for ref := range s.Slots {
		resp.Slots = append(resp.Slots, ref)
	}
	sort.Slice(resp.Slots, func(i, j int) bool {
		a, b := resp.Slots[i], resp.Slots[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Slot < b.Slot
	})
	for id := range s.Tasks {
		resp.Tasks = append(resp.Tasks, id)
	}
	sort.Strings(resp.Tasks)
	for d := range s.Days {
		resp.Days = append(resp.Days, d)
	}
	sort.Strings(resp.Days)
	return resp
}

type ToggleTaskRequest struct {
	AssignmentID string `json:"assignment_id"`
	Multi        bool   `json:"multi"`
}

func (r *ToggleTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "assignment_id", Message: "assignment_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ToggleSlotRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Multi      bool   `json:"multi"`
}

func (r *ToggleSlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Slot, calendar.SlotKindValues) {
		errs = append(errs, validator.ValidationError{Field: "slot", Message: "slot must be one of morning, afternoon"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ToggleSlotRequest) Ref() SlotRef {
	return SlotRef{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Slot:       calendar.SlotKind(r.Slot),
	}
}

type ToggleDayRequest struct {
	Date  string `json:"date"`
	Multi bool   `json:"multi"`
}

func (r *ToggleDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SnapshotTasksRequest captures the task selection as seen at trigger time.
type SnapshotTasksRequest struct {
	TriggerID string `json:"trigger_id"`
}

func (r *SnapshotTasksRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TriggerID) {
		errs = append(errs, validator.ValidationError{Field: "trigger_id", Message: "trigger_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

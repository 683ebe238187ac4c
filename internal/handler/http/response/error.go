package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrWindowNotShiftable):
		BadRequest(w, "Window is not shiftable in this view", nil)
	case errors.Is(err, calendar.ErrInvalidViewSpan):
		BadRequest(w, "Invalid view span", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, schedule.ErrDayBlocked):
		Conflict(w, "Target cell is blocked by leave or a holiday")
	case errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, leave.ErrSlotRequired):
		BadRequest(w, "Slot is required for half-day leave", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

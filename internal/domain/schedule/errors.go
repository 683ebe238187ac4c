package schedule

import "errors"

var (
	ErrAssignmentNotFound = errors.New("Assignment not found")
	ErrInvalidRequestData = errors.New("Invalid request data")
	ErrDayBlocked         = errors.New("Day is blocked by leave or holiday")
)

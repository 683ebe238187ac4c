package leave

import "errors"

var (
	ErrRecordNotFound  = errors.New("Leave record not found")
	ErrHolidayNotFound = errors.New("Holiday not found")
	ErrSlotRequired    = errors.New("Half-day leave requires a slot")
)

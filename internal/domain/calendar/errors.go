package calendar

import "errors"

var (
	ErrWindowNotShiftable = errors.New("window navigation requires a week or biweek span")
	ErrInvalidViewSpan    = errors.New("invalid view span")
)

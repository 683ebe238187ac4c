package calendar

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/busday"
)

// NavigateTo computes the window produced by a navigation request toward
// target. Week/BiWeek windows shift by exactly one business day per call
// rather than snapping to contain the target, so arrow-key paging walks the
// business-day timeline smoothly without ever revealing a weekend. Day view
// moves the current date directly without shifting anything.
//
// Calling NavigateTo on a Month window is a programmer error; month paging
// goes through SnapToMonth.
//
// Shift precedence: target left of the window shifts backward, target right
// of the window shifts forward; a target already inside the window shifts in
// the direction of travel relative to the previous navigation.
func (w Window) NavigateTo(target time.Time) (Window, error) {
	target = busday.Normalize(target)

	switch w.Span {
	case ViewSpanDay:
		next := w
		next.CurrentDate = target
		if !busday.IsBusinessDay(next.CurrentDate) {
			next.CurrentDate = busday.Next(next.CurrentDate)
		}
		next.Start = next.CurrentDate
		next.LastNavigated = &target
		return next, nil
	case ViewSpanWeek, ViewSpanBiWeek:
		// handled below
	case ViewSpanMonth:
		return w, ErrWindowNotShiftable
	default:
		return w, ErrInvalidViewSpan
	}

	end := w.End()
	backward := w.LastNavigated != nil && target.Before(*w.LastNavigated)

	next := w
	switch {
	case target.Before(w.Start):
		next.Start = busday.Previous(w.Start)
	case target.After(end):
		next.Start = busday.Next(w.Start)
	case backward:
		next.Start = busday.Previous(w.Start)
	default:
		next.Start = busday.Next(w.Start)
	}

	next.CurrentDate = target
	if !busday.IsBusinessDay(next.CurrentDate) {
		next.CurrentDate = busday.Next(next.CurrentDate)
	}
	// Record the requested date even when the start did not move.
	next.LastNavigated = &target
	return next, nil
}

// SnapToMonth points a Month window at the first calendar day of target's
// month. No-op for other spans.
func (w Window) SnapToMonth(target time.Time) Window {
	if w.Span != ViewSpanMonth {
		return w
	}
	target = busday.Normalize(target)
	next := w
	next.Start = time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location())
	next.CurrentDate = target
	next.LastNavigated = &target
	return next
}

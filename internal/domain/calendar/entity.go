package calendar

import (
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/busday"
)

// ViewSpan is the size of the visible board window.
type ViewSpan string

const (
	ViewSpanDay    ViewSpan = "day"
	ViewSpanWeek   ViewSpan = "week"
	ViewSpanBiWeek ViewSpan = "biweek"
	ViewSpanMonth  ViewSpan = "month"
)

var ViewSpanValues = []string{
	string(ViewSpanDay),
	string(ViewSpanWeek),
	string(ViewSpanBiWeek),
	string(ViewSpanMonth),
}

// BusinessDays returns the number of business days the span covers.
// Month is calendar-based and returns 0 (callers enumerate the month directly).
func (v ViewSpan) BusinessDays() int {
	switch v {
	case ViewSpanDay:
		return 1
	case ViewSpanWeek:
		return 5
	case ViewSpanBiWeek:
		return 10
	default:
		return 0
	}
}

// Shiftable reports whether the span participates in window-shift navigation.
func (v ViewSpan) Shiftable() bool {
	return v == ViewSpanWeek || v == ViewSpanBiWeek
}

// SlotKind identifies the half-day scheduling unit within a day.
type SlotKind string

const (
	SlotMorning   SlotKind = "morning"
	SlotAfternoon SlotKind = "afternoon"
)

var SlotKindValues = []string{string(SlotMorning), string(SlotAfternoon)}

// DateLayout is the wire format for calendar dates throughout the API.
const DateLayout = "2006-01-02"

// DateKey renders d in the canonical map/wire key form.
func DateKey(d time.Time) string {
	return d.Format(DateLayout)
}

// Window is the visible portion of the business-day timeline. It is a value:
// navigation returns a new Window rather than mutating in place, so the host
// can install the result atomically.
type Window struct {
	Start         time.Time  `json:"start_date"`
	Span          ViewSpan   `json:"view_span"`
	CurrentDate   time.Time  `json:"current_date"`
	LastNavigated *time.Time `json:"last_navigated,omitempty"`
}

// NewWindow creates a Monday-aligned window around d.
func NewWindow(d time.Time, span ViewSpan) Window {
	d = busday.Normalize(d)
	start := busday.MondayOfWeek(d)
	if span == ViewSpanMonth {
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	}
	current := d
	if !busday.IsBusinessDay(current) {
		current = busday.Next(current)
	}
	return Window{Start: start, Span: span, CurrentDate: current}
}

// End is the last visible date. For Week/BiWeek spans this is Start advanced
// by span-1 business days; Day view ends where it starts; Month view ends on
// the last calendar day of the month.
func (w Window) End() time.Time {
	switch {
	case w.Span.Shiftable():
		return busday.Add(w.Start, w.Span.BusinessDays()-1)
	case w.Span == ViewSpanMonth:
		return w.Start.AddDate(0, 1, -1)
	default:
		return w.Start
	}
}

// Dates enumerates every visible date. Week/BiWeek windows contain business
// days only; Month windows include weekends.
func (w Window) Dates() []time.Time {
	if w.Span.Shiftable() {
		return busday.Between(w.Start, w.Span.BusinessDays())
	}
	if w.Span == ViewSpanMonth {
		var days []time.Time
		for d := w.Start; d.Month() == w.Start.Month(); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	}
	return []time.Time{w.Start}
}

// Package busday provides pure business-day arithmetic over local calendar dates.
// All functions are total: any date in, a normalized weekday date out.
package busday

import "time"

// Normalize strips the time-of-day component, returning midnight local time.
func Normalize(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// IsBusinessDay reports whether d falls on Monday through Friday.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Next returns the first business day strictly after d.
func Next(d time.Time) time.Time {
	d = Normalize(d).AddDate(0, 0, 1)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// Previous returns the first business day strictly before d.
func Previous(d time.Time) time.Time {
	d = Normalize(d).AddDate(0, 0, -1)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// MondayOfWeek resolves the Monday anchoring d's week. Weekend dates roll
// forward to the following Monday, weekdays resolve to the Monday of the
// current ISO week.
func MondayOfWeek(d time.Time) time.Time {
	d = Normalize(d)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d.AddDate(0, 0, -(int(d.Weekday()) - 1))
	}
}

// Add advances d by n business days (n may be zero; negative n retreats).
// A weekend input is first normalized onto the nearest business day in the
// direction of travel.
func Add(d time.Time, n int) time.Time {
	d = Normalize(d)
	if !IsBusinessDay(d) {
		if n >= 0 {
			d = Next(d)
		} else {
			d = Previous(d)
		}
	}
	for n > 0 {
		d = Next(d)
		n--
	}
	for n < 0 {
		d = Previous(d)
		n++
	}
	return d
}

// Between returns the inclusive business-day sequence from start spanning
// count days.
func Between(start time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	d := Normalize(start)
	if !IsBusinessDay(d) {
		d = Next(d)
	}
	for i := 0; i < count; i++ {
		days = append(days, d)
		d = Next(d)
	}
	return days
}

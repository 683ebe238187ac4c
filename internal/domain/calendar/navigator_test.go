package calendar

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/busday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewWindowMondayAligned(t *testing.T) {
	w := NewWindow(date(2024, 6, 12), ViewSpanWeek) // a Wednesday
	assert.True(t, w.Start.Equal(date(2024, 6, 10)))
	assert.True(t, w.End().Equal(date(2024, 6, 14)))

	// Weekend mount rolls forward to the following Monday.
	w = NewWindow(date(2024, 6, 8), ViewSpanWeek)
	assert.True(t, w.Start.Equal(date(2024, 6, 10)))
}

func TestNavigateForwardAcrossWeekend(t *testing.T) {
	// windowStart = Friday 2024-06-07, navigate to Monday 2024-06-10:
	// the window advances one business day, landing on the Monday.
	w := Window{Start: date(2024, 6, 7), Span: ViewSpanWeek}
	next, err := w.NavigateTo(date(2024, 6, 10))
	require.NoError(t, err)
	assert.True(t, next.Start.Equal(date(2024, 6, 10)))
}

func TestNavigateTargetLeftOfWindow(t *testing.T) {
	w := Window{Start: date(2024, 6, 10), Span: ViewSpanWeek}
	next, err := w.NavigateTo(date(2024, 6, 3))
	require.NoError(t, err)
	assert.True(t, next.Start.Equal(date(2024, 6, 7)), "start should retreat one business day")
}

func TestNavigateTargetRightOfWindow(t *testing.T) {
	w := Window{Start: date(2024, 6, 10), Span: ViewSpanWeek}
	next, err := w.NavigateTo(date(2024, 6, 24))
	require.NoError(t, err)
	assert.True(t, next.Start.Equal(date(2024, 6, 11)), "start should advance one business day, not jump")
}

func TestNavigateInsideWindowUsesDirection(t *testing.T) {
	w := Window{Start: date(2024, 6, 10), Span: ViewSpanBiWeek}

	// First navigation has no history: forward.
	next, err := w.NavigateTo(date(2024, 6, 13))
	require.NoError(t, err)
	assert.True(t, next.Start.Equal(date(2024, 6, 11)))

	// Target earlier than the last navigated date: backward.
	back, err := next.NavigateTo(date(2024, 6, 12))
	require.NoError(t, err)
	assert.True(t, back.Start.Equal(date(2024, 6, 10)))
}

func TestNavigateRecordsLastNavigatedEvenWhenStartUnchanged(t *testing.T) {
	w := Window{Start: date(2024, 6, 10), Span: ViewSpanDay, CurrentDate: date(2024, 6, 10)}
	next, err := w.NavigateTo(date(2024, 6, 11))
	require.NoError(t, err)
	require.NotNil(t, next.LastNavigated)
	assert.True(t, next.LastNavigated.Equal(date(2024, 6, 11)))
}

func TestNavigateMonthIsRejected(t *testing.T) {
	w := Window{Start: date(2024, 6, 1), Span: ViewSpanMonth}
	_, err := w.NavigateTo(date(2024, 7, 3))
	assert.ErrorIs(t, err, ErrWindowNotShiftable)

	snapped := w.SnapToMonth(date(2024, 7, 18))
	assert.True(t, snapped.Start.Equal(date(2024, 7, 1)))
}

func TestWindowStaysWeekendFree(t *testing.T) {
	w := Window{Start: date(2024, 6, 3), Span: ViewSpanBiWeek}
	target := date(2024, 5, 1)
	// Page forward day by day across several weekends; the invariant must hold
	// after every step.
	for i := 0; i < 40; i++ {
		target = target.AddDate(0, 0, 1)
		next, err := w.NavigateTo(target)
		require.NoError(t, err)

		for _, d := range next.Dates() {
			assert.True(t, busday.IsBusinessDay(d), "window exposed weekend date %s", d.Format(DateLayout))
		}
		// Single-step paging: at most one business day of movement per call.
		assert.True(t, next.Start.Equal(w.Start) ||
			next.Start.Equal(busday.Next(w.Start)) ||
			next.Start.Equal(busday.Previous(w.Start)))
		w = next
	}
}

func TestWindowEndSpans(t *testing.T) {
	week := Window{Start: date(2024, 6, 10), Span: ViewSpanWeek}
	assert.True(t, week.End().Equal(date(2024, 6, 14)))

	biweek := Window{Start: date(2024, 6, 10), Span: ViewSpanBiWeek}
	assert.True(t, biweek.End().Equal(date(2024, 6, 21)))

	month := Window{Start: date(2024, 6, 1), Span: ViewSpanMonth}
	assert.True(t, month.End().Equal(date(2024, 6, 30)))
	assert.Len(t, month.Dates(), 30)
}

package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
)

// recordSourceImpl adapts the live leave and holiday repositories to the
// read-only leave.RecordSource view the overlay merge consumes.
type recordSourceImpl struct {
	records  leave.RecordRepository
	holidays leave.HolidayRepository
}

func NewRecordSource(records leave.RecordRepository, holidays leave.HolidayRepository) leave.RecordSource {
	return &recordSourceImpl{records: records, holidays: holidays}
}

func (s *recordSourceImpl) Records(ctx context.Context, start, end time.Time, employeeIDs []string) ([]leave.Record, error) {
	return s.records.GetByDateRange(ctx, start, end, employeeIDs)
}

func (s *recordSourceImpl) Holidays(ctx context.Context, start, end time.Time) ([]leave.Holiday, error) {
	return s.holidays.GetByDateRange(ctx, start, end)
}

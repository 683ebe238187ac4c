package leave

import (
	"context"
	"time"
)

// RecordRepository - interface for leave_records table
type RecordRepository interface {
	Upsert(ctx context.Context, record Record) (Record, error)
	GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Record, error)
	DeleteForDate(ctx context.Context, date time.Time, employeeID *string) (int64, error)
}

// HolidayRepository - interface for holidays table
type HolidayRepository interface {
	Upsert(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	DeleteForDate(ctx context.Context, date time.Time) (int64, error)
}

// RecordSource is a read-only view over leave and holiday state. The live
// Postgres repositories satisfy it, as does the legacy offline overlay store;
// the overlay merge consumes either without knowing the storage medium.
type RecordSource interface {
	Records(ctx context.Context, start, end time.Time, employeeIDs []string) ([]Record, error)
	Holidays(ctx context.Context, start, end time.Time) ([]Holiday, error)
}

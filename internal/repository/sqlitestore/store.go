package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	_ "modernc.org/sqlite"
)

// Store reads the legacy offline overlay file. Boards that synced leave
// before the Postgres backend existed still carry one of these; it serves
// the same leave.RecordSource view as the live repositories so the grid
// overlay can consume either.
type Store struct {
	path string
	db   *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS overlay_records (
	employee_id TEXT NOT NULL,
	date        TEXT NOT NULL,
	leave_type  TEXT NOT NULL,
	duration    TEXT NOT NULL,
	slot        TEXT,
	is_holiday  INTEGER NOT NULL DEFAULT 0,
	holiday_name TEXT,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_overlay_records_date ON overlay_records (date);
`

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open overlay store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to prepare overlay schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Records implements leave.RecordSource.
func (s *Store) Records(ctx context.Context, start, end time.Time, employeeIDs []string) ([]leave.Record, error) {
	query := `
		SELECT employee_id, date, leave_type, duration, slot, updated_at
		FROM overlay_records
		WHERE is_holiday = 0 AND date BETWEEN ? AND ?
	`
	args := []interface{}{dateText(start), dateText(end)}
	if len(employeeIDs) > 0 {
		query += ` AND employee_id IN (?` + strings.Repeat(",?", len(employeeIDs)-1) + `)`
		for _, id := range employeeIDs {
			args = append(args, id)
		}
	}
	query += ` ORDER BY date, employee_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		var date, duration, updatedAt string
		var slot sql.NullString
		if err := rows.Scan(&rec.EmployeeID, &date, &rec.Type, &duration, &slot, &updatedAt); err != nil {
			return nil, err
		}
		rec.Date, err = parseDateText(date)
		if err != nil {
			return nil, err
		}
		rec.Duration = leave.Duration(duration)
		if slot.Valid {
			kind := calendar.SlotKind(slot.String)
			rec.Slot = &kind
		}
		if ts, tsErr := time.Parse(time.RFC3339, updatedAt); tsErr == nil {
			rec.UpdatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Holidays implements leave.RecordSource. The legacy format stores holidays
// as rows with is_holiday set and an empty employee id.
func (s *Store) Holidays(ctx context.Context, start, end time.Time) ([]leave.Holiday, error) {
	query := `
		SELECT date, holiday_name, updated_at
		FROM overlay_records
		WHERE is_holiday = 1 AND date BETWEEN ? AND ?
		ORDER BY date
	`
	rows, err := s.db.QueryContext(ctx, query, dateText(start), dateText(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		var h leave.Holiday
		var date, updatedAt string
		var name sql.NullString
		if err := rows.Scan(&date, &name, &updatedAt); err != nil {
			return nil, err
		}
		h.Date, err = parseDateText(date)
		if err != nil {
			return nil, err
		}
		h.Name = name.String
		if ts, tsErr := time.Parse(time.RFC3339, updatedAt); tsErr == nil {
			h.UpdatedAt = ts
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Vacuum drops rows older than the retention horizon. Runs from the cron
// scheduler so a long-lived overlay file does not grow without bound.
func (s *Store) Vacuum(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM overlay_records WHERE date < ?`, dateText(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func dateText(t time.Time) string {
	return t.Format(calendar.DateLayout)
}

func parseDateText(s string) (time.Time, error) {
	return time.ParseInLocation(calendar.DateLayout, s, time.Local)
}

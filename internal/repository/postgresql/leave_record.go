package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.RecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

func scanLeaveRecord(row pgx.Row) (leave.Record, error) {
	var rec leave.Record
	var duration string
	var slot *string
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.Type,
		&duration,
		&slot,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return leave.Record{}, err
	}
	rec.Duration = leave.Duration(duration)
	if slot != nil {
		kind := calendar.SlotKind(*slot)
		rec.Slot = &kind
	}
	return rec, nil
}

// Upsert implements leave.RecordRepository. A new record for the same
// (employee, date, slot) key supersedes the previous one.
func (r *leaveRecordRepositoryImpl) Upsert(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	var slot *string
	if record.Slot != nil {
		s := string(*record.Slot)
		slot = &s
	}

	// Full-day leave replaces any half-day records already on the date.
	deleteQuery := `
		DELETE FROM leave_records
		WHERE employee_id = $1 AND date = $2
		  AND ($3::text IS NULL OR slot IS NULL OR slot = $3)
	`
	if _, err := q.Exec(ctx, deleteQuery, record.EmployeeID, record.Date, slot); err != nil {
		return leave.Record{}, err
	}

	query := `
		INSERT INTO leave_records (
			id, employee_id, date, leave_type, duration, slot,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		)
		RETURNING id, employee_id, date, leave_type, duration, slot, created_at, updated_at
	`
	row := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.Type,
		string(record.Duration),
		slot,
	)
	return scanLeaveRecord(row)
}

// GetByDateRange implements leave.RecordRepository.
func (r *leaveRecordRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, leave_type, duration, slot, created_at, updated_at
		FROM leave_records
		WHERE date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if len(employeeIDs) > 0 {
		query += ` AND employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY date, employee_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		rec, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteForDate implements leave.RecordRepository.
func (r *leaveRecordRepositoryImpl) DeleteForDate(ctx context.Context, date time.Time, employeeID *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_records
		WHERE date = $1 AND ($2::text IS NULL OR employee_id = $2)
	`
	commandTag, err := q.Exec(ctx, query, date, employeeID)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Upsert implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (date) DO UPDATE
		SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, date, name, created_at, updated_at
	`
	var h leave.Holiday
	err := q.QueryRow(ctx, query, holiday.ID, holiday.Date, holiday.Name).Scan(
		&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// GetByDateRange implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at, updated_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		var h leave.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// DeleteForDate implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) DeleteForDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM holidays
		WHERE date = $1
	`
	commandTag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) schedule.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	id, task_id, employee_id, date, slot, column_start, hours,
	title, project, priority, status, notes, created_at, updated_at
`

func scanPlacement(row pgx.Row) (schedule.TaskPlacement, error) {
	var p schedule.TaskPlacement
	var slot string
	err := row.Scan(
		&p.AssignmentID,
		&p.TaskID,
		&p.EmployeeID,
		&p.Date,
		&slot,
		&p.ColumnStart,
		&p.Hours,
		&p.Title,
		&p.Project,
		&p.Priority,
		&p.Status,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return schedule.TaskPlacement{}, err
	}
	p.Slot = calendar.SlotKind(slot)
	return p, nil
}

// Create implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, placement schedule.TaskPlacement) (schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (
			id, task_id, employee_id, date, slot, column_start, hours,
			title, project, priority, status, notes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			NOW(), NOW()
		)
		RETURNING ` + assignmentColumns

	row := q.QueryRow(ctx, query,
		placement.AssignmentID,
		placement.TaskID,
		placement.EmployeeID,
		placement.Date,
		string(placement.Slot),
		placement.ColumnStart,
		placement.Hours,
		placement.Title,
		placement.Project,
		placement.Priority,
		placement.Status,
		placement.Notes,
	)
	return scanPlacement(row)
}

// GetByID implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	p, err := scanPlacement(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.TaskPlacement{}, schedule.ErrAssignmentNotFound
	}
	return p, err
}

// GetByDateRange implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE date BETWEEN $1 AND $2
	`
	args := []interface{}{start, end}
	if len(employeeIDs) > 0 {
		query += ` AND employee_id = ANY($3)`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY date, employee_id, slot, column_start`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlacements(rows)
}

// GetBySlot implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetBySlot(ctx context.Context, employeeID string, date time.Time, slot calendar.SlotKind) ([]schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE employee_id = $1 AND date = $2 AND slot = $3
		ORDER BY column_start
	`
	rows, err := q.Query(ctx, query, employeeID, date, string(slot))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlacements(rows)
}

func collectPlacements(rows pgx.Rows) ([]schedule.TaskPlacement, error) {
	var placements []schedule.TaskPlacement
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, rows.Err()
}

// Update implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, req schedule.UpdateAssignmentRequest) (schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.AssignmentID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.EmployeeID != nil {
		addSet("employee_id", *req.EmployeeID)
	}
	if req.Date != nil {
		addSet("date", *req.Date)
	}
	if req.Slot != nil {
		addSet("slot", *req.Slot)
	}
	if req.ColumnStart != nil {
		addSet("column_start", *req.ColumnStart)
	}
	if req.Hours != nil {
		addSet("hours", *req.Hours)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Priority != nil {
		addSet("priority", *req.Priority)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}

	query := `
		UPDATE assignments
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING ` + assignmentColumns

	p, err := scanPlacement(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.TaskPlacement{}, schedule.ErrAssignmentNotFound
	}
	return p, err
}

// UpdatePosition implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) UpdatePosition(ctx context.Context, id string, columnStart int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE assignments
		SET column_start = $2, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, columnStart)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

// Delete implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM assignments
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

// BulkUpdate implements schedule.AssignmentRepository.
func (r *assignmentRepositoryImpl) BulkUpdate(ctx context.Context, ids []string, patch schedule.BulkPatch) ([]schedule.TaskPlacement, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{ids}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.Priority != nil {
		addSet("priority", *patch.Priority)
	}
	if patch.Project != nil {
		addSet("project", *patch.Project)
	}

	query := `
		UPDATE assignments
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = ANY($1)
		RETURNING ` + assignmentColumns

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlacements(rows)
}

package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// txRunner runs fn inside a single transaction; the transaction is carried in
// the context handed to fn so repository calls join it via GetQuerier.
type txRunner func(ctx context.Context, fn func(ctx context.Context) error) error

func pgxTxRunner(db *database.DB) txRunner {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, postgresql.TxKey, tx))
		})
	}
}

type leaveServiceImpl struct {
	runTx          txRunner
	leaveRepo      leave.RecordRepository
	holidayRepo    leave.HolidayRepository
	assignmentRepo schedule.AssignmentRepository
	employeeRepo   employee.Repository
	hub            *sse.Hub
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.RecordRepository,
	holidayRepo leave.HolidayRepository,
	assignmentRepo schedule.AssignmentRepository,
	employeeRepo employee.Repository,
	hub *sse.Hub,
) leave.Service {
	return &leaveServiceImpl{
		runTx:          pgxTxRunner(db),
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		hub:            hub,
	}
}

// DetectConflicts implements leave.Service.
func (s *leaveServiceImpl) DetectConflicts(ctx context.Context, req leave.DetectConflictsRequest) ([]leave.Conflict, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dates := parseDates(req.Dates)
	var slot *calendar.SlotKind
	if req.Slot != nil {
		kind := calendar.SlotKind(*req.Slot)
		slot = &kind
	}

	grid, names, err := s.loadGrid(ctx, dates, req.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	return DetectConflicts(grid, names, dates, req.EmployeeIDs, leave.Duration(req.Duration), slot), nil
}

// ApplyLeave implements leave.Service. Two phases: first every conflicting
// assignment is deleted, sequentially and fault-tolerantly, then the leave
// records are written. Delete-before-write guarantees the grid never shows a
// task coexisting with a leave-marked day or slot.
func (s *leaveServiceImpl) ApplyLeave(ctx context.Context, req leave.SetLeaveRequest) (leave.ApplyResult, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyResult{}, err
	}

	dates := parseDates(req.Dates)
	var slot *calendar.SlotKind
	if req.Slot != nil {
		kind := calendar.SlotKind(*req.Slot)
		slot = &kind
	}

	grid, names, err := s.loadGrid(ctx, dates, req.EmployeeIDs)
	if err != nil {
		return leave.ApplyResult{}, err
	}
	conflicts := DetectConflicts(grid, names, dates, req.EmployeeIDs, leave.Duration(req.Duration), slot)

	result := s.deleteConflicts(ctx, conflicts)

	err = s.runTx(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			for _, employeeID := range req.EmployeeIDs {
				record := leave.Record{
					ID:         uuid.NewString(),
					EmployeeID: employeeID,
					Date:       date,
					Type:       req.LeaveType,
					Duration:   leave.Duration(req.Duration),
					Slot:       slot,
				}
				if _, err := s.leaveRepo.Upsert(txCtx, record); err != nil {
					return fmt.Errorf("failed to write leave record: %w", err)
				}
				result.RecordCount++
			}
		}
		return nil
	})
	if err != nil {
		return leave.ApplyResult{}, err
	}

	s.publishBlockingChanged(req.EmployeeIDs, req.Dates)
	return result, nil
}

// ApplyHoliday implements leave.Service. A holiday covers every employee, so
// conflicts are collected board-wide; individual leave records on the holiday
// dates are superseded and removed in the same transaction as the holiday
// write.
func (s *leaveServiceImpl) ApplyHoliday(ctx context.Context, req leave.SetHolidayRequest) (leave.ApplyResult, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyResult{}, err
	}

	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return leave.ApplyResult{}, fmt.Errorf("failed to list employees: %w", err)
	}
	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	dates := parseDates(req.Dates)
	grid, names, err := s.loadGrid(ctx, dates, employeeIDs)
	if err != nil {
		return leave.ApplyResult{}, err
	}
	conflicts := DetectConflicts(grid, names, dates, employeeIDs, leave.DurationFullDay, nil)

	result := s.deleteConflicts(ctx, conflicts)

	err = s.runTx(ctx, func(txCtx context.Context) error {
		for _, date := range dates {
			holiday := leave.Holiday{ID: uuid.NewString(), Date: date, Name: req.Name}
			if _, err := s.holidayRepo.Upsert(txCtx, holiday); err != nil {
				return fmt.Errorf("failed to write holiday: %w", err)
			}
			// Holiday dominates: drop superseded individual leave.
			if _, err := s.leaveRepo.DeleteForDate(txCtx, date, nil); err != nil {
				return fmt.Errorf("failed to clear superseded leave: %w", err)
			}
			result.RecordCount++
		}
		return nil
	})
	if err != nil {
		return leave.ApplyResult{}, err
	}

	s.publishBlockingChanged(nil, req.Dates)
	return result, nil
}

// ClearBlocking implements leave.Service. Removing the records and re-merging
// the overlay restores any placements the conflict deletions never touched.
func (s *leaveServiceImpl) ClearBlocking(ctx context.Context, date time.Time, employeeID *string) (leave.ClearBlockingResult, error) {
	var result leave.ClearBlockingResult

	deleted, err := s.leaveRepo.DeleteForDate(ctx, date, employeeID)
	if err != nil {
		return result, fmt.Errorf("failed to delete leave records: %w", err)
	}
	result.DeletedCount += deleted

	if employeeID == nil {
		deleted, err := s.holidayRepo.DeleteForDate(ctx, date)
		if err != nil {
			return result, fmt.Errorf("failed to delete holiday: %w", err)
		}
		result.DeletedCount += deleted
	}

	var employeeIDs []string
	if employeeID != nil {
		employeeIDs = []string{*employeeID}
	}
	s.publishBlockingChanged(employeeIDs, []string{calendar.DateKey(date)})
	return result, nil
}

// deleteConflicts runs phase one of the write path: each conflicting
// assignment is deleted in turn; a failure is logged and skipped, it never
// aborts the remaining deletions or the record write.
func (s *leaveServiceImpl) deleteConflicts(ctx context.Context, conflicts []leave.Conflict) leave.ApplyResult {
	var result leave.ApplyResult
	for _, c := range conflicts {
		if err := s.assignmentRepo.Delete(ctx, c.AssignmentID); err != nil {
			slog.Error("Failed to delete conflicting assignment",
				"assignment_id", c.AssignmentID,
				"employee_id", c.EmployeeID,
				"date", calendar.DateKey(c.Date),
				"error", err,
			)
			result.FailedCount++
			continue
		}
		result.DeletedCount++
	}
	return result
}

// loadGrid builds the base grid for the implicated keys plus a name lookup
// for conflict reporting.
func (s *leaveServiceImpl) loadGrid(ctx context.Context, dates []time.Time, employeeIDs []string) (schedule.Grid, map[string]string, error) {
	start, end := dateBounds(dates)

	placements, err := s.assignmentRepo.GetByDateRange(ctx, start, end, employeeIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	names := make(map[string]string, len(employeeIDs))
	for _, id := range employeeIDs {
		if emp, err := s.employeeRepo.GetByID(ctx, id); err == nil {
			names[id] = emp.FullName
		}
	}

	return schedule.BuildGrid(employeeIDs, dates, placements), names, nil
}

func (s *leaveServiceImpl) publishBlockingChanged(employeeIDs []string, dates []string) {
	s.hub.Publish(sse.Event{
		Event: "blocking_changed",
		Data:  map[string]interface{}{"employee_ids": employeeIDs, "dates": dates},
	})
}

func parseDates(raw []string) []time.Time {
	dates := make([]time.Time, 0, len(raw))
	for _, r := range raw {
		if d, ok := validator.IsValidDate(r); ok {
			dates = append(dates, d)
		}
	}
	return dates
}

func dateBounds(dates []time.Time) (time.Time, time.Time) {
	if len(dates) == 0 {
		return time.Time{}, time.Time{}
	}
	start, end := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}
	return start, end
}

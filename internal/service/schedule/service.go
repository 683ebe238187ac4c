package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
	leaveOverlay "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/leave"
	"github.com/google/uuid"
)

type scheduleServiceImpl struct {
	assignmentRepo schedule.AssignmentRepository
	employeeRepo   employee.Repository
	leaveSource    leave.RecordSource
	hub            *sse.Hub
}

func NewScheduleService(
	assignmentRepo schedule.AssignmentRepository,
	employeeRepo employee.Repository,
	leaveSource leave.RecordSource,
	hub *sse.Hub,
) schedule.Service {
	return &scheduleServiceImpl{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		leaveSource:    leaveSource,
		hub:            hub,
	}
}

// CreateAssignment implements schedule.Service.
func (s *scheduleServiceImpl) CreateAssignment(ctx context.Context, req schedule.CreateAssignmentRequest) (schedule.TaskPlacement, error) {
	if err := req.Validate(); err != nil {
		return schedule.TaskPlacement{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	slotKind := calendar.SlotKind(req.Slot)

	if err := s.checkNotBlocked(ctx, req.EmployeeID, date, slotKind); err != nil {
		return schedule.TaskPlacement{}, err
	}

	placement := schedule.TaskPlacement{
		AssignmentID: uuid.NewString(),
		TaskID:       req.TaskID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		Slot:         slotKind,
		Hours:        req.Hours,
		Title:        req.Title,
		Project:      req.Project,
		Priority:     req.Priority,
		Status:       req.Status,
		Notes:        req.Notes,
	}

	if req.ColumnStart != nil {
		placement.ColumnStart = *req.ColumnStart
	} else {
		// No explicit drop position: append after the last occupied column,
		// leaving existing positions where they are.
		existing, err := s.assignmentRepo.GetBySlot(ctx, req.EmployeeID, date, slotKind)
		if err != nil {
			return schedule.TaskPlacement{}, fmt.Errorf("failed to read slot: %w", err)
		}
		offset := 0
		for _, p := range existing {
			if end := p.ColumnStart + p.Width(); end > offset {
				offset = end
			}
		}
		placement.ColumnStart = offset
	}

	created, err := s.assignmentRepo.Create(ctx, placement)
	if err != nil {
		return schedule.TaskPlacement{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.publishGridUpdated(ctx, created.EmployeeID, []time.Time{created.Date})
	return created, nil
}

// UpdateAssignment implements schedule.Service.
func (s *scheduleServiceImpl) UpdateAssignment(ctx context.Context, req schedule.UpdateAssignmentRequest) (schedule.TaskPlacement, error) {
	if err := req.Validate(); err != nil {
		return schedule.TaskPlacement{}, err
	}

	updated, err := s.assignmentRepo.Update(ctx, req)
	if err != nil {
		return schedule.TaskPlacement{}, err
	}

	s.publishGridUpdated(ctx, updated.EmployeeID, []time.Time{updated.Date})
	return updated, nil
}

// MoveAssignment implements schedule.Service. The destination write completes
// before the source repack is computed; the repack runs over the placement
// list held from before the move, so it reflects exactly the removal of the
// moved task. The drop position is authoritative at the destination; only the
// vacated slot is compacted.
func (s *scheduleServiceImpl) MoveAssignment(ctx context.Context, req schedule.MoveAssignmentRequest) (schedule.TaskPlacement, error) {
	if err := req.Validate(); err != nil {
		return schedule.TaskPlacement{}, err
	}

	current, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return schedule.TaskPlacement{}, err
	}

	targetDate, _ := validator.IsValidDate(req.Date)
	targetSlot := calendar.SlotKind(req.Slot)

	if err := s.checkNotBlocked(ctx, req.EmployeeID, targetDate, targetSlot); err != nil {
		return schedule.TaskPlacement{}, err
	}

	sameSlot := current.EmployeeID == req.EmployeeID &&
		current.Date.Equal(targetDate) && current.Slot == targetSlot

	var sourcePlacements []schedule.TaskPlacement
	if !sameSlot {
		sourcePlacements, err = s.assignmentRepo.GetBySlot(ctx, current.EmployeeID, current.Date, current.Slot)
		if err != nil {
			return schedule.TaskPlacement{}, fmt.Errorf("failed to read source slot: %w", err)
		}
	}

	update := schedule.UpdateAssignmentRequest{
		AssignmentID: req.AssignmentID,
		EmployeeID:   &req.EmployeeID,
		Date:         &req.Date,
		Slot:         &req.Slot,
		ColumnStart:  &req.ColumnStart,
		Hours:        req.Hours,
	}
	moved, err := s.assignmentRepo.Update(ctx, update)
	if err != nil {
		return schedule.TaskPlacement{}, err
	}

	if !sameSlot {
		s.repackSlot(ctx, schedule.RemoveAndPack(sourcePlacements, req.AssignmentID))
	}

	s.publishGridUpdated(ctx, moved.EmployeeID, []time.Time{current.Date, moved.Date})
	return moved, nil
}

// DeleteAssignment implements schedule.Service.
func (s *scheduleServiceImpl) DeleteAssignment(ctx context.Context, assignmentID string) error {
	current, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}

	placements, err := s.assignmentRepo.GetBySlot(ctx, current.EmployeeID, current.Date, current.Slot)
	if err != nil {
		return fmt.Errorf("failed to read slot: %w", err)
	}

	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		return err
	}

	s.repackSlot(ctx, schedule.RemoveAndPack(placements, assignmentID))
	s.publishGridUpdated(ctx, current.EmployeeID, []time.Time{current.Date})
	return nil
}

// BulkUpdateAssignments implements schedule.Service.
func (s *scheduleServiceImpl) BulkUpdateAssignments(ctx context.Context, req schedule.BulkUpdateRequest) ([]schedule.TaskPlacement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.assignmentRepo.BulkUpdate(ctx, req.AssignmentIDs, req.Patch)
	if err != nil {
		return nil, err
	}

	if len(updated) > 0 {
		dates := make([]time.Time, 0, len(updated))
		for _, p := range updated {
			dates = append(dates, p.Date)
		}
		s.publishGridUpdated(ctx, updated[0].EmployeeID, dates)
	}
	return updated, nil
}

// GetCalendarGrid implements schedule.Service.
func (s *scheduleServiceImpl) GetCalendarGrid(ctx context.Context, req schedule.GridRequest) (schedule.GridResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.GridResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	window := calendar.NewWindow(start, calendar.ViewSpan(req.ViewSpan))

	employees, err := s.employeeRepo.List(ctx, req.TeamID)
	if err != nil {
		return schedule.GridResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	placements, err := s.assignmentRepo.GetByDateRange(ctx, window.Start, window.End(), employeeIDs)
	if err != nil {
		return schedule.GridResponse{}, fmt.Errorf("failed to load assignments: %w", err)
	}

	records, err := s.leaveSource.Records(ctx, window.Start, window.End(), employeeIDs)
	if err != nil {
		return schedule.GridResponse{}, fmt.Errorf("failed to load leave records: %w", err)
	}
	holidays, err := s.leaveSource.Holidays(ctx, window.Start, window.End())
	if err != nil {
		return schedule.GridResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	grid := schedule.BuildGrid(employeeIDs, window.Dates(), placements)
	merged := leaveOverlay.MergeOverlay(grid, records, holidays)

	return schedule.NewGridResponse(window, merged, employees), nil
}

// checkNotBlocked rejects writes into cells covered by a holiday, full-day
// leave, or half-day leave on the target slot.
func (s *scheduleServiceImpl) checkNotBlocked(ctx context.Context, employeeID string, date time.Time, slot calendar.SlotKind) error {
	holidays, err := s.leaveSource.Holidays(ctx, date, date)
	if err != nil {
		return fmt.Errorf("failed to check holidays: %w", err)
	}
	if len(holidays) > 0 {
		return schedule.ErrDayBlocked
	}

	records, err := s.leaveSource.Records(ctx, date, date, []string{employeeID})
	if err != nil {
		return fmt.Errorf("failed to check leave records: %w", err)
	}
	for _, rec := range records {
		if rec.Duration == leave.DurationFullDay {
			return schedule.ErrDayBlocked
		}
		if rec.Slot != nil && *rec.Slot == slot {
			return schedule.ErrDayBlocked
		}
	}
	return nil
}

// repackSlot persists the column positions produced by a left-pack. Position
// writes are best-effort: a failed write leaves a gap the next pack closes.
func (s *scheduleServiceImpl) repackSlot(ctx context.Context, packed []schedule.TaskPlacement) {
	for _, p := range packed {
		if err := s.assignmentRepo.UpdatePosition(ctx, p.AssignmentID, p.ColumnStart); err != nil {
			slog.Error("Failed to persist repacked position",
				"assignment_id", p.AssignmentID,
				"column_start", p.ColumnStart,
				"error", err,
			)
		}
	}
}

func (s *scheduleServiceImpl) publishGridUpdated(ctx context.Context, employeeID string, dates []time.Time) {
	team := ""
	if emp, err := s.employeeRepo.GetByID(ctx, employeeID); err == nil {
		team = emp.Team
	}
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, calendar.DateKey(d))
	}
	s.hub.Publish(sse.Event{
		Team:  team,
		Event: "grid_updated",
		Data:  map[string]interface{}{"employee_id": employeeID, "dates": keys},
	})
}

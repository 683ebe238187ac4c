package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssignmentRepo struct {
	placements []schedule.TaskPlacement
	deleted    []string
	failDelete map[string]bool
	calls      *[]string
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, p schedule.TaskPlacement) (schedule.TaskPlacement, error) {
	return p, nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id string) (schedule.TaskPlacement, error) {
	for _, p := range f.placements {
		if p.AssignmentID == id {
			return p, nil
		}
	}
	return schedule.TaskPlacement{}, schedule.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]schedule.TaskPlacement, error) {
	var out []schedule.TaskPlacement
	for _, p := range f.placements {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) GetBySlot(ctx context.Context, employeeID string, date time.Time, slot calendar.SlotKind) ([]schedule.TaskPlacement, error) {
	var out []schedule.TaskPlacement
	for _, p := range f.placements {
		if p.EmployeeID == employeeID && p.Date.Equal(date) && p.Slot == slot {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, req schedule.UpdateAssignmentRequest) (schedule.TaskPlacement, error) {
	return schedule.TaskPlacement{}, schedule.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) UpdatePosition(ctx context.Context, id string, columnStart int) error {
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) error {
	if f.failDelete[id] {
		return errors.New("delete failed")
	}
	f.deleted = append(f.deleted, id)
	if f.calls != nil {
		*f.calls = append(*f.calls, "delete:"+id)
	}
	remaining := f.placements[:0]
	for _, p := range f.placements {
		if p.AssignmentID != id {
			remaining = append(remaining, p)
		}
	}
	f.placements = remaining
	return nil
}

func (f *fakeAssignmentRepo) BulkUpdate(ctx context.Context, ids []string, patch schedule.BulkPatch) ([]schedule.TaskPlacement, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, team string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

type fakeRecordRepo struct {
	records []leave.Record
	calls   *[]string
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, record leave.Record) (leave.Record, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "upsert:"+record.EmployeeID)
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordRepo) GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]leave.Record, error) {
	var out []leave.Record
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) DeleteForDate(ctx context.Context, date time.Time, employeeID *string) (int64, error) {
	var count int64
	remaining := f.records[:0]
	for _, r := range f.records {
		if r.Date.Equal(date) && (employeeID == nil || r.EmployeeID == *employeeID) {
			count++
			continue
		}
		remaining = append(remaining, r)
	}
	f.records = remaining
	return count, nil
}

type fakeHolidayRepo struct {
	holidays []leave.Holiday
	calls    *[]string
}

func (f *fakeHolidayRepo) Upsert(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "holiday:"+calendar.DateKey(holiday.Date))
	}
	f.holidays = append(f.holidays, holiday)
	return holiday, nil
}

func (f *fakeHolidayRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.Holiday, error) {
	var out []leave.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) DeleteForDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	remaining := f.holidays[:0]
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			count++
			continue
		}
		remaining = append(remaining, h)
	}
	f.holidays = remaining
	return count, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(assignments *fakeAssignmentRepo, employees *fakeEmployeeRepo) *leaveServiceImpl {
	svc := NewLeaveService(nil, &fakeRecordRepo{}, &fakeHolidayRepo{}, assignments, employees, sse.NewHub()).(*leaveServiceImpl)
	svc.runTx = passthroughTx
	return svc
}

func TestServiceDetectConflictsPreview(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	assignments := &fakeAssignmentRepo{
		placements: []schedule.TaskPlacement{
			{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, Hours: 2, Title: "Planning"},
		},
	}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Dana Smith"},
	}}
	svc := newTestService(assignments, employees)

	conflicts, err := svc.DetectConflicts(context.Background(), leave.DetectConflictsRequest{
		EmployeeIDs: []string{"emp-1"},
		Dates:       []string{"2025-03-03"},
		Duration:    string(leave.DurationFullDay),
	})

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "a1", conflicts[0].AssignmentID)
	assert.Equal(t, "Dana Smith", conflicts[0].EmployeeName)
	// Preview never deletes.
	assert.Empty(t, assignments.deleted)
}

func TestServiceDetectConflictsRejectsInvalidRequest(t *testing.T) {
	svc := newTestService(&fakeAssignmentRepo{}, &fakeEmployeeRepo{})

	_, err := svc.DetectConflicts(context.Background(), leave.DetectConflictsRequest{
		EmployeeIDs: []string{"emp-1"},
		Dates:       []string{"2025-03-03"},
		Duration:    "half_day",
		// missing slot
	})
	require.Error(t, err)
}

func TestDeleteConflictsToleratesFailures(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	assignments := &fakeAssignmentRepo{
		failDelete: map[string]bool{"a2": true},
	}
	svc := newTestService(assignments, &fakeEmployeeRepo{})

	conflicts := []leave.Conflict{
		{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning},
		{AssignmentID: "a2", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning},
		{AssignmentID: "a3", EmployeeID: "emp-2", Date: date, Slot: calendar.SlotAfternoon},
	}

	result := svc.deleteConflicts(context.Background(), conflicts)

	// The failed deletion is skipped, the rest still run.
	assert.Equal(t, 2, result.DeletedCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []string{"a1", "a3"}, assignments.deleted)
}

func TestApplyLeaveDeletesConflictsBeforeWrite(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	var calls []string
	assignments := &fakeAssignmentRepo{
		placements: []schedule.TaskPlacement{
			{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, Hours: 2},
			{AssignmentID: "a2", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotAfternoon, Hours: 2},
		},
		calls: &calls,
	}
	records := &fakeRecordRepo{calls: &calls}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Dana Smith"},
	}}
	svc := NewLeaveService(nil, records, &fakeHolidayRepo{}, assignments, employees, sse.NewHub()).(*leaveServiceImpl)
	svc.runTx = passthroughTx

	result, err := svc.ApplyLeave(context.Background(), leave.SetLeaveRequest{
		EmployeeIDs: []string{"emp-1"},
		Dates:       []string{"2025-03-03"},
		LeaveType:   "annual",
		Duration:    string(leave.DurationFullDay),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.DeletedCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Equal(t, 1, result.RecordCount)

	// Every conflicting assignment is gone before the first record write.
	assert.Equal(t, []string{"delete:a1", "delete:a2", "upsert:emp-1"}, calls)
	assert.Empty(t, assignments.placements)
	require.Len(t, records.records, 1)
	assert.Equal(t, leave.DurationFullDay, records.records[0].Duration)
}

func TestApplyHolidaySupersedesIndividualLeave(t *testing.T) {
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.Local)
	var calls []string
	assignments := &fakeAssignmentRepo{
		placements: []schedule.TaskPlacement{
			{AssignmentID: "a1", EmployeeID: "emp-1", Date: date, Slot: calendar.SlotMorning, Hours: 2},
			{AssignmentID: "a2", EmployeeID: "emp-2", Date: date, Slot: calendar.SlotMorning, Hours: 2},
		},
		calls: &calls,
	}
	records := &fakeRecordRepo{
		records: []leave.Record{
			{ID: "r1", EmployeeID: "emp-1", Date: date, Duration: leave.DurationFullDay},
		},
		calls: &calls,
	}
	holidays := &fakeHolidayRepo{calls: &calls}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Dana Smith"},
		"emp-2": {ID: "emp-2", FullName: "Lee Park"},
	}}
	svc := NewLeaveService(nil, records, holidays, assignments, employees, sse.NewHub()).(*leaveServiceImpl)
	svc.runTx = passthroughTx

	result, err := svc.ApplyHoliday(context.Background(), leave.SetHolidayRequest{
		Dates: []string{"2025-03-03"},
		Name:  "Founders Day",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.DeletedCount)
	assert.Equal(t, 1, result.RecordCount)

	// Board-wide deletions first, then the holiday write.
	assert.Contains(t, calls, "delete:a1")
	assert.Contains(t, calls, "delete:a2")
	assert.Equal(t, "holiday:2025-03-03", calls[len(calls)-1])

	// The holiday replaced the individual leave on its date.
	require.Len(t, holidays.holidays, 1)
	assert.Empty(t, records.records)
}

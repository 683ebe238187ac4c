package leave

import (
	"context"
	"time"
)

type Service interface {
	DetectConflicts(ctx context.Context, req DetectConflictsRequest) ([]Conflict, error)
	ApplyLeave(ctx context.Context, req SetLeaveRequest) (ApplyResult, error)
	ApplyHoliday(ctx context.Context, req SetHolidayRequest) (ApplyResult, error)
	ClearBlocking(ctx context.Context, date time.Time, employeeID *string) (ClearBlockingResult, error)
}

package schedule

import (
	"context"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
)

// AssignmentRepository - interface for assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, placement TaskPlacement) (TaskPlacement, error)
	GetByID(ctx context.Context, id string) (TaskPlacement, error)
	GetByDateRange(ctx context.Context, start, end time.Time, employeeIDs []string) ([]TaskPlacement, error)
	GetBySlot(ctx context.Context, employeeID string, date time.Time, slot calendar.SlotKind) ([]TaskPlacement, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (TaskPlacement, error)
	UpdatePosition(ctx context.Context, id string, columnStart int) error
	Delete(ctx context.Context, id string) error
	BulkUpdate(ctx context.Context, ids []string, patch BulkPatch) ([]TaskPlacement, error)
}

package schedule

import (
	"context"
)

type Service interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (TaskPlacement, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (TaskPlacement, error)
	MoveAssignment(ctx context.Context, req MoveAssignmentRequest) (TaskPlacement, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
	BulkUpdateAssignments(ctx context.Context, req BulkUpdateRequest) ([]TaskPlacement, error)
	GetCalendarGrid(ctx context.Context, req GridRequest) (GridResponse, error)
}

package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, team string) ([]Employee, error)
}

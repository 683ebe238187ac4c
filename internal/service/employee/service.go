package employee

import (
	"context"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
)

type Service interface {
	GetEmployee(ctx context.Context, id string) (employee.Employee, error)
	ListEmployees(ctx context.Context, team string) ([]employee.Employee, error)
}

type employeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) Service {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// GetEmployee implements Service.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// ListEmployees implements Service.
func (s *employeeServiceImpl) ListEmployees(ctx context.Context, team string) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx, team)
}

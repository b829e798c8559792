package ports

import (
	"context"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee records.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	// Create persists a new employee. An unknown department maps to
	// domain.ErrUnknownDepartment.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int) error
	InsertSalaryChange(ctx context.Context, change *domain.SalaryChange) error
	ListSalaryChanges(ctx context.Context, employeeID int) ([]*domain.SalaryChange, error)
}

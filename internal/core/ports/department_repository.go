package ports

import (
	"context"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// DepartmentRepository defines persistence for departments.
type DepartmentRepository interface {
	List(ctx context.Context) ([]*domain.Department, error)
	GetByID(ctx context.Context, id int) (*domain.Department, error)
	// Create persists a new department. A duplicate name maps to
	// domain.ErrDepartmentExists.
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id int) error
	HasEmployees(ctx context.Context, id int) (bool, error)
}

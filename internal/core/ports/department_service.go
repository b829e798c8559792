package ports

import (
	"context"
	"time"
)

// DepartmentInput carries the writable fields of a department.
type DepartmentInput struct {
	Name        string
	Description string
	ManagerID   *int
}

// DepartmentView is the read model returned by department queries.
type DepartmentView struct {
	ID            int
	Name          string
	Description   string
	ManagerID     *int
	ManagerName   string
	EmployeeCount int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// DepartmentService defines use-case operations on departments.
type DepartmentService interface {
	List(ctx context.Context) ([]DepartmentView, error)
	Get(ctx context.Context, id int) (*DepartmentView, error)
	Create(ctx context.Context, input DepartmentInput) (*DepartmentView, error)
	Update(ctx context.Context, id int, input DepartmentInput) (*DepartmentView, error)
	// Delete refuses with domain.ErrDepartmentInUse while employees
	// still reference the department.
	Delete(ctx context.Context, id int) error
}

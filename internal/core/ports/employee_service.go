package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// Caller identifies the authenticated user performing an operation, as
// derived from the token claims of the current request.
type Caller struct {
	UserID     int
	Role       domain.Role
	EmployeeID *int
}

// EmployeeInput carries the writable fields of an employee record.
type EmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	JobTitle     string
	Salary       decimal.Decimal
	DepartmentID int
}

// EmployeeView is the read model returned by all employee queries.
type EmployeeView struct {
	ID             int
	FirstName      string
	LastName       string
	Email          string
	JobTitle       string
	Salary         decimal.Decimal
	DepartmentID   int
	DepartmentName string
	FullName       string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// SalaryChangeView is a single salary history entry.
type SalaryChangeView struct {
	ID             int
	EmployeeID     int
	PreviousSalary decimal.Decimal
	NewSalary      decimal.Decimal
	Reason         string
	EffectiveDate  time.Time
	CreatedAt      time.Time
}

// EmployeeService defines use-case operations on employees. The lowest
// role tier is scoped to its own linked record; that scoping is enforced
// here, not in handlers.
type EmployeeService interface {
	List(ctx context.Context, caller Caller) ([]EmployeeView, error)
	Get(ctx context.Context, caller Caller, id int) (*EmployeeView, error)
	ListByDepartment(ctx context.Context, departmentID int) ([]EmployeeView, error)
	Create(ctx context.Context, input EmployeeInput) (*EmployeeView, error)
	Update(ctx context.Context, caller Caller, id int, input EmployeeInput) (*EmployeeView, error)
	Delete(ctx context.Context, id int) error
	SalaryHistory(ctx context.Context, employeeID int) ([]SalaryChangeView, error)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is an HR record. At most one User account may link to it.
type Employee struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	JobTitle     string
	Salary       decimal.Decimal
	DepartmentID int
	// DepartmentName is populated on read paths from the joined department.
	DepartmentName string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// FullName is the display name used across user profiles and reports.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// SalaryChange is an audit entry recorded whenever an employee's salary
// is modified.
type SalaryChange struct {
	ID              int
	EmployeeID      int
	PreviousSalary  decimal.Decimal
	NewSalary       decimal.Decimal
	Reason          string
	EffectiveDate   time.Time
	CreatedAt       time.Time
	CreatedByUserID *int
}

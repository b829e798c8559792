package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// employeeRequest carries the writable employee fields for create and
// update. Salary bounds are checked in the service (decimals carry no
// validator tags).
type employeeRequest struct {
	FirstName    string          `json:"firstName"    validate:"required,max=50"`
	LastName     string          `json:"lastName"     validate:"required,max=50"`
	Email        string          `json:"email"        validate:"required,email,max=100"`
	JobTitle     string          `json:"jobTitle"     validate:"required,max=100"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID int             `json:"departmentId" validate:"required"`
}

type employeeResponse struct {
	ID             int             `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	JobTitle       string          `json:"jobTitle"`
	Salary         decimal.Decimal `json:"salary"`
	DepartmentID   int             `json:"departmentId"`
	DepartmentName string          `json:"departmentName"`
	FullName       string          `json:"fullName"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

type salaryChangeResponse struct {
	ID             int             `json:"id"`
	EmployeeID     int             `json:"employeeId"`
	PreviousSalary decimal.Decimal `json:"previousSalary"`
	NewSalary      decimal.Decimal `json:"newSalary"`
	Reason         string          `json:"reason,omitempty"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toEmployeeInput(req employeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		JobTitle:     req.JobTitle,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}
}

func toEmployeeResponse(v ports.EmployeeView) employeeResponse {
	return employeeResponse{
		ID:             v.ID,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Email:          v.Email,
		JobTitle:       v.JobTitle,
		Salary:         v.Salary,
		DepartmentID:   v.DepartmentID,
		DepartmentName: v.DepartmentName,
		FullName:       v.FullName,
		CreatedAt:      v.CreatedAt.UTC(),
		UpdatedAt:      v.UpdatedAt,
	}
}

func toEmployeeResponses(views []ports.EmployeeView) []employeeResponse {
	out := make([]employeeResponse, len(views))
	for i, v := range views {
		out[i] = toEmployeeResponse(v)
	}
	return out
}

func toSalaryChangeResponses(views []ports.SalaryChangeView) []salaryChangeResponse {
	out := make([]salaryChangeResponse, len(views))
	for i, v := range views {
		out[i] = salaryChangeResponse{
			ID:             v.ID,
			EmployeeID:     v.EmployeeID,
			PreviousSalary: v.PreviousSalary,
			NewSalary:      v.NewSalary,
			Reason:         v.Reason,
			EffectiveDate:  v.EffectiveDate.UTC(),
			CreatedAt:      v.CreatedAt.UTC(),
		}
	}
	return out
}

package handler

import (
	"time"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

type departmentRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	ManagerID   *int   `json:"managerId"`
}

type departmentResponse struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	ManagerID     *int       `json:"managerId,omitempty"`
	ManagerName   string     `json:"managerName,omitempty"`
	EmployeeCount int        `json:"employeeCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func toDepartmentInput(req departmentRequest) ports.DepartmentInput {
	return ports.DepartmentInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	}
}

func toDepartmentResponse(v ports.DepartmentView) departmentResponse {
	return departmentResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		ManagerID:     v.ManagerID,
		ManagerName:   v.ManagerName,
		EmployeeCount: v.EmployeeCount,
		CreatedAt:     v.CreatedAt.UTC(),
		UpdatedAt:     v.UpdatedAt,
	}
}

func toDepartmentResponses(views []ports.DepartmentView) []departmentResponse {
	out := make([]departmentResponse, len(views))
	for i, v := range views {
		out[i] = toDepartmentResponse(v)
	}
	return out
}

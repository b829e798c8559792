package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentStat aggregates headcount and salary figures for one
// department.
type DepartmentStat struct {
	DepartmentID   int             `json:"departmentId"`
	DepartmentName string          `json:"departmentName"`
	EmployeeCount  int             `json:"employeeCount"`
	TotalSalary    decimal.Decimal `json:"totalSalary"`
	AverageSalary  decimal.Decimal `json:"averageSalary"`
}

// ReportSummary is the workforce overview served by the reports
// endpoint. The struct is JSON-tagged because it is cached verbatim.
type ReportSummary struct {
	TotalEmployees   int              `json:"totalEmployees"`
	TotalDepartments int              `json:"totalDepartments"`
	TotalSalary      decimal.Decimal  `json:"totalSalary"`
	ByDepartment     []DepartmentStat `json:"byDepartment"`
	GeneratedAt      time.Time        `json:"generatedAt"`
}

// ReportService computes workforce aggregates.
type ReportService interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

// ReportRepository reads the aggregate rows the summary is built from.
type ReportRepository interface {
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
}

// ReportCache stores a computed summary for a fixed window so repeated
// dashboard loads do not re-aggregate.
type ReportCache interface {
	Get(ctx context.Context) (*ReportSummary, error)
	Set(ctx context.Context, summary *ReportSummary) error
}

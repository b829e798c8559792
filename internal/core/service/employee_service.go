package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// EmployeeService implements employee CRUD with role scoping: the lowest
// tier only ever sees its own linked record.
type EmployeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, log: log}
}

// List returns all employees for Manager and above. Employee-tier
// callers get a single-element slice with their own record, and are
// refused when the token carries no employee linkage.
func (s *EmployeeService) List(ctx context.Context, caller ports.Caller) ([]ports.EmployeeView, error) {
	if caller.Role == domain.RoleEmployee {
		if caller.EmployeeID == nil {
			return nil, domain.ErrForbidden
		}
		emp, err := s.repo.GetByID(ctx, *caller.EmployeeID)
		if err != nil {
			return nil, err
		}
		return []ports.EmployeeView{toEmployeeView(emp)}, nil
	}

	emps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeViews(emps), nil
}

// Get returns one employee. Employee-tier callers may only read their
// own linked record.
func (s *EmployeeService) Get(ctx context.Context, caller ports.Caller, id int) (*ports.EmployeeView, error) {
	if caller.Role == domain.RoleEmployee && (caller.EmployeeID == nil || *caller.EmployeeID != id) {
		return nil, domain.ErrForbidden
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toEmployeeView(emp)
	return &view, nil
}

func (s *EmployeeService) ListByDepartment(ctx context.Context, departmentID int) ([]ports.EmployeeView, error) {
	emps, err := s.repo.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return toEmployeeViews(emps), nil
}

func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeView, error) {
	if input.Salary.IsNegative() {
		return nil, domain.ErrNegativeSalary
	}

	created, err := s.repo.Create(ctx, &domain.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		JobTitle:     input.JobTitle,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("employee_id", created.ID).Int("department_id", created.DepartmentID).Msg("employee created")

	view := toEmployeeView(created)
	return &view, nil
}

// Update overwrites the writable fields of an employee. A salary change
// additionally appends a history entry attributed to the acting user.
func (s *EmployeeService) Update(ctx context.Context, caller ports.Caller, id int, input ports.EmployeeInput) (*ports.EmployeeView, error) {
	if input.Salary.IsNegative() {
		return nil, domain.ErrNegativeSalary
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := &domain.Employee{
		ID:           id,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		JobTitle:     input.JobTitle,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
		UpdatedAt:    &now,
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if !current.Salary.Equal(input.Salary) {
		actor := caller.UserID
		change := &domain.SalaryChange{
			EmployeeID:      id,
			PreviousSalary:  current.Salary,
			NewSalary:       input.Salary,
			EffectiveDate:   now,
			CreatedAt:       now,
			CreatedByUserID: &actor,
		}
		if err := s.repo.InsertSalaryChange(ctx, change); err != nil {
			// History is an audit trail, not the system of record.
			s.log.Warn().Err(err).Int("employee_id", id).Msg("failed to record salary change")
		}
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toEmployeeView(emp)
	return &view, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("employee_id", id).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) SalaryHistory(ctx context.Context, employeeID int) ([]ports.SalaryChangeView, error) {
	if _, err := s.repo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	changes, err := s.repo.ListSalaryChanges(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.SalaryChangeView, len(changes))
	for i, c := range changes {
		views[i] = ports.SalaryChangeView{
			ID:             c.ID,
			EmployeeID:     c.EmployeeID,
			PreviousSalary: c.PreviousSalary,
			NewSalary:      c.NewSalary,
			Reason:         c.Reason,
			EffectiveDate:  c.EffectiveDate,
			CreatedAt:      c.CreatedAt,
		}
	}
	return views, nil
}

func toEmployeeView(e *domain.Employee) ports.EmployeeView {
	return ports.EmployeeView{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		JobTitle:       e.JobTitle,
		Salary:         e.Salary,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		FullName:       e.FullName(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEmployeeViews(emps []*domain.Employee) []ports.EmployeeView {
	views := make([]ports.EmployeeView, len(emps))
	for i, e := range emps {
		views[i] = toEmployeeView(e)
	}
	return views
}

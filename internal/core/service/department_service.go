package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// DepartmentService implements department CRUD. Deletion is refused
// while employees still reference the department.
type DepartmentService struct {
	repo ports.DepartmentRepository
	log  zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, log: log}
}

func (s *DepartmentService) List(ctx context.Context) ([]ports.DepartmentView, error) {
	depts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.DepartmentView, len(depts))
	for i, d := range depts {
		views[i] = toDepartmentView(d)
	}
	return views, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int) (*ports.DepartmentView, error) {
	dept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toDepartmentView(dept)
	return &view, nil
}

func (s *DepartmentService) Create(ctx context.Context, input ports.DepartmentInput) (*ports.DepartmentView, error) {
	created, err := s.repo.Create(ctx, &domain.Department{
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   input.ManagerID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("department_id", created.ID).Str("name", created.Name).Msg("department created")

	view := toDepartmentView(created)
	return &view, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int, input ports.DepartmentInput) (*ports.DepartmentView, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.Update(ctx, &domain.Department{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   input.ManagerID,
		UpdatedAt:   &now,
	}); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.repo.HasEmployees(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("department_id", id).Msg("department deleted")
	return nil
}

func toDepartmentView(d *domain.Department) ports.DepartmentView {
	return ports.DepartmentView{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

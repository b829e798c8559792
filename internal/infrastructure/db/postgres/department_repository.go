package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// DepartmentRepository persists departments.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

const departmentSelect = `
	SELECT d.id, d.name, COALESCE(d.description, ''), d.manager_id,
		COALESCE(m.first_name || ' ' || m.last_name, ''),
		(SELECT count(*) FROM employees e WHERE e.department_id = d.id),
		d.created_at, d.updated_at
	FROM departments d
	LEFT JOIN employees m ON m.id = d.manager_id`

func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, departmentSelect+` ORDER BY d.id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var depts []*domain.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, d)
	}
	return depts, rows.Err()
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	d, err := scanDepartment(r.pool.QueryRow(ctx, departmentSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO departments (name, description, manager_id, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING id`,
		d.Name, d.Description, d.ManagerID, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return nil, mapDepartmentWriteError(err)
	}
	return r.GetByID(ctx, d.ID)
}

func (r *DepartmentRepository) Update(ctx context.Context, d *domain.Department) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE departments
		SET name = $2, description = NULLIF($3, ''), manager_id = $4, updated_at = $5
		WHERE id = $1`,
		d.ID, d.Name, d.Description, d.ManagerID, d.UpdatedAt,
	)
	if err != nil {
		return mapDepartmentWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		// Employees referencing the department fail the FK restrict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrDepartmentInUse
		}
		return fmt.Errorf("delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) HasEmployees(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE department_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check department employees: %w", err)
	}
	return exists, nil
}

func mapDepartmentWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrDepartmentExists
		case "23503":
			return domain.ErrEmployeeNotFound // manager_id points nowhere
		}
	}
	return fmt.Errorf("write department: %w", err)
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var d domain.Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.ManagerID, &d.ManagerName,
		&d.EmployeeCount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

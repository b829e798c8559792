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

// EmployeeRepository persists employee records and their salary history.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.job_title, e.salary,
		e.department_id, d.name, e.created_at, e.updated_at
	FROM employees e
	JOIN departments d ON d.id = e.department_id`

func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, employeeSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *EmployeeRepository) ListByDepartment(ctx context.Context, departmentID int) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, employeeSelect+` WHERE e.department_id = $1 ORDER BY e.id`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list employees by department: %w", err)
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e, err := scanEmployee(r.pool.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO employees (first_name, last_name, email, job_title, salary, department_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		e.FirstName, e.LastName, e.Email, e.JobTitle, e.Salary, e.DepartmentID, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return nil, mapEmployeeWriteError(err)
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, job_title = $5,
			salary = $6, department_id = $7, updated_at = $8
		WHERE id = $1`,
		e.ID, e.FirstName, e.LastName, e.Email, e.JobTitle, e.Salary, e.DepartmentID, e.UpdatedAt,
	)
	if err != nil {
		return mapEmployeeWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) InsertSalaryChange(ctx context.Context, c *domain.SalaryChange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO salary_history (employee_id, previous_salary, new_salary, reason, effective_date, created_at, created_by_user_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`,
		c.EmployeeID, c.PreviousSalary, c.NewSalary, c.Reason, c.EffectiveDate, c.CreatedAt, c.CreatedByUserID,
	)
	if err != nil {
		return fmt.Errorf("insert salary change: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) ListSalaryChanges(ctx context.Context, employeeID int) ([]*domain.SalaryChange, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT id, employee_id, previous_salary, new_salary, COALESCE(reason, ''),
			effective_date, created_at, created_by_user_id
		FROM salary_history
		WHERE employee_id = $1
		ORDER BY effective_date DESC, id DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list salary changes: %w", err)
	}
	defer rows.Close()

	var changes []*domain.SalaryChange
	for rows.Next() {
		var c domain.SalaryChange
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.PreviousSalary, &c.NewSalary, &c.Reason,
			&c.EffectiveDate, &c.CreatedAt, &c.CreatedByUserID); err != nil {
			return nil, fmt.Errorf("scan salary change: %w", err)
		}
		changes = append(changes, &c)
	}
	return changes, rows.Err()
}

// mapEmployeeWriteError turns the department FK violation into a domain
// validation error instead of letting it bubble up as a fault.
func mapEmployeeWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return domain.ErrUnknownDepartment
		case "23505":
			return fmt.Errorf("employee email taken: %w", err)
		}
	}
	return fmt.Errorf("write employee: %w", err)
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.JobTitle, &e.Salary,
		&e.DepartmentID, &e.DepartmentName, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEmployees(rows pgx.Rows) ([]*domain.Employee, error) {
	var emps []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		emps = append(emps, e)
	}
	return emps, rows.Err()
}

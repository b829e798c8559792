package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// UserRepository persists the credential store in the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `u.id, u.email, u.password_hash, u.role, u.employee_id, u.is_active,
	u.created_at, u.updated_at, u.last_login_at,
	COALESCE(e.first_name || ' ' || e.last_name, '')`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN employees e ON e.id = u.employee_id
		WHERE u.email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN employees e ON e.id = u.employee_id
		WHERE u.email = $1 AND u.is_active`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) FindByEmployeeID(ctx context.Context, employeeID int) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN employees e ON e.id = u.employee_id
		WHERE u.employee_id = $1`,
		employeeID,
	)
	return scanUser(row)
}

// Create inserts the user and relies on the unique constraints to settle
// registration races: a duplicate email or an already-linked employee at
// insert time surfaces as the same conflict the pre-checks would report.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, employee_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Email, user.PasswordHash, int(user.Role), user.EmployeeID, user.IsActive, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_employee_id_key" {
				return nil, domain.ErrEmployeeLinked
			}
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role int
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.EmployeeID, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt, &u.EmployeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}

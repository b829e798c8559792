package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hcm-systems/hcm-api/internal/pkg/password"
)

// schemaStatements are executed one by one on startup. Everything is
// idempotent so restarts are safe. departments.manager_id references
// employees, which in turn reference departments, hence the deferred
// ALTER TABLE.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id          serial PRIMARY KEY,
		name        varchar(100) NOT NULL,
		description varchar(500),
		manager_id  integer,
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS departments_name_key ON departments (name)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id            serial PRIMARY KEY,
		first_name    varchar(50)  NOT NULL,
		last_name     varchar(50)  NOT NULL,
		email         varchar(100) NOT NULL,
		job_title     varchar(100) NOT NULL,
		salary        numeric(18,2) NOT NULL DEFAULT 0,
		department_id integer NOT NULL REFERENCES departments (id) ON DELETE RESTRICT,
		created_at    timestamptz NOT NULL DEFAULT now(),
		updated_at    timestamptz
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_email_key ON employees (email)`,
	`DO $$ BEGIN
		ALTER TABLE departments
			ADD CONSTRAINT departments_manager_id_fkey
			FOREIGN KEY (manager_id) REFERENCES employees (id) ON DELETE SET NULL;
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS users (
		id            serial PRIMARY KEY,
		email         varchar(100) NOT NULL,
		password_hash text NOT NULL,
		role          integer NOT NULL,
		employee_id   integer REFERENCES employees (id) ON DELETE SET NULL,
		is_active     boolean NOT NULL DEFAULT true,
		created_at    timestamptz NOT NULL DEFAULT now(),
		updated_at    timestamptz,
		last_login_at timestamptz
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_employee_id_key ON users (employee_id)`,
	`CREATE TABLE IF NOT EXISTS salary_history (
		id                 serial PRIMARY KEY,
		employee_id        integer NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
		previous_salary    numeric(18,2) NOT NULL,
		new_salary         numeric(18,2) NOT NULL,
		reason             varchar(500),
		effective_date     timestamptz NOT NULL DEFAULT now(),
		created_at         timestamptz NOT NULL DEFAULT now(),
		created_by_user_id integer REFERENCES users (id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS salary_history_employee_id_idx ON salary_history (employee_id)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed inserts the demo data set on an empty database: four departments,
// three employees, and three users sharing the password "password123"
// (admin@company.com is the HrAdmin). Non-empty databases are left
// untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash("password123")
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	statements := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO departments (name, description) VALUES
			('Human Resources', 'HR Department'),
			('Engineering', 'Software Development'),
			('Sales', 'Sales and Marketing'),
			('Finance', 'Financial Operations')
			ON CONFLICT DO NOTHING`, nil},
		{`INSERT INTO employees (first_name, last_name, email, job_title, salary, department_id) VALUES
			('John', 'Doe', 'john.doe@company.com', 'HR Manager', 75000, 1),
			('Jane', 'Smith', 'jane.smith@company.com', 'Senior Developer', 95000, 2),
			('Mike', 'Johnson', 'mike.johnson@company.com', 'Sales Representative', 55000, 3)
			ON CONFLICT DO NOTHING`, nil},
		{`INSERT INTO users (email, password_hash, role, employee_id, is_active) VALUES
			('admin@company.com', $1, 3, NULL, true),
			('john.doe@company.com', $1, 2, 1, true),
			('jane.smith@company.com', $1, 1, 2, true)
			ON CONFLICT DO NOTHING`, []any{hash}},
	}

	for _, s := range statements {
		if _, err := pool.Exec(ctx, s.sql, s.args...); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	log.Info().Msg("database seeded with demo departments, employees, and users")
	return nil
}

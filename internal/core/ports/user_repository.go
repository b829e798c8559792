package ports

import (
	"context"
	"time"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// UserRepository defines persistence for the credential store.
type UserRepository interface {
	// FindByEmail matches the email exactly as stored, regardless of
	// activity state. Used by registration's duplicate check.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindActiveByEmail matches active users only and resolves the
	// linked employee's full name.
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmployeeID(ctx context.Context, employeeID int) (*domain.User, error)
	// Create persists a new user. Unique-constraint violations map to
	// domain.ErrUserExists (email) or domain.ErrEmployeeLinked
	// (employee link) so concurrent registrations race safely.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}

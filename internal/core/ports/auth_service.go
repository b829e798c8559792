package ports

import (
	"context"
	"time"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// UserProfile is the outward representation of a user. It never carries
// the password hash.
type UserProfile struct {
	ID           int
	Email        string
	Role         domain.Role
	RoleName     string
	EmployeeID   *int
	EmployeeName string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
}

// AuthResult is returned by login and register: a signed bearer token,
// its expiry instant, and the authenticated profile.
type AuthResult struct {
	Token   string
	Expires time.Time
	User    UserProfile
}

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Email      string
	Password   string
	Role       domain.Role
	EmployeeID *int
}

// AuthService implements login, registration, current-user lookup, and
// token validation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	CurrentUser(ctx context.Context, email string) (*UserProfile, error)
	// ValidateToken is a pure signature/expiry check. It does not
	// re-verify that the account is still active.
	ValidateToken(tokenString string) bool
}

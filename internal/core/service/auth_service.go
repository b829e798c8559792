package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
	"github.com/hcm-systems/hcm-api/internal/pkg/password"
	"github.com/hcm-systems/hcm-api/internal/pkg/token"
)

// AuthService composes the credential store, the password hasher, and
// the token issuer into login, registration, current-user lookup, and
// token validation.
type AuthService struct {
	users     ports.UserRepository
	employees ports.EmployeeRepository
	secret    string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, employees ports.EmployeeRepository, secret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, employees: employees, secret: secret, tokenTTL: tokenTTL, log: log}
}

// Login authenticates an active user by exact email match and password.
// Credential misses and inactive accounts are indistinguishable to the
// caller. On success lastLoginAt is updated before the token is issued;
// failed attempts never touch it.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*ports.AuthResult, error) {
	if email == "" || pw == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pw, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	s.log.Info().Int("user_id", user.ID).Str("role", user.Role.String()).Msg("user logged in")

	return s.issue(user)
}

// Register creates an active user account and logs it in immediately,
// mirroring Login's response shape. Conflicts: the email already has a
// user, the employee does not exist, or the employee is already linked.
// Insert races fall through to the repository's unique-constraint
// mapping and surface as the same conflicts.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	var employeeName string
	if input.EmployeeID != nil {
		emp, err := s.employees.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return nil, domain.ErrUnknownEmployee
			}
			return nil, err
		}
		employeeName = emp.FullName()

		if _, err := s.users.FindByEmployeeID(ctx, *input.EmployeeID); err == nil {
			return nil, domain.ErrEmployeeLinked
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		EmployeeID:   input.EmployeeID,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	created.EmployeeName = employeeName

	s.log.Info().Int("user_id", created.ID).Str("role", created.Role.String()).Msg("user registered")

	return s.issue(created)
}

// CurrentUser resolves the active user behind the token's email claim,
// including the linked employee's display name.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*ports.UserProfile, error) {
	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	profile := toProfile(user)
	return &profile, nil
}

// ValidateToken checks signature and expiry only. A token stays valid
// for its whole TTL even if the account is deactivated meanwhile.
func (s *AuthService) ValidateToken(tokenString string) bool {
	_, err := token.Parse(tokenString, s.secret)
	return err == nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	signed, expires, err := token.Issue(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: signed, Expires: expires, User: toProfile(user)}, nil
}

func toProfile(u *domain.User) ports.UserProfile {
	return ports.UserProfile{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		RoleName:     u.Role.String(),
		EmployeeID:   u.EmployeeID,
		EmployeeName: u.EmployeeName,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
		IsActive:     u.IsActive,
	}
}

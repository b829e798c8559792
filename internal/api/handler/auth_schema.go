package handler

import (
	"time"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Email      string `json:"email"      validate:"required,email,max=100"`
	Password   string `json:"password"   validate:"required,min=6"`
	Role       int    `json:"role"       validate:"required,oneof=1 2 3"`
	EmployeeID *int   `json:"employeeId"`
}

// userResponse is the wire shape of a user profile. role is the numeric
// ordinal, roleName its canonical name; the password hash never appears.
type userResponse struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	Role         int        `json:"role"`
	RoleName     string     `json:"roleName"`
	EmployeeID   *int       `json:"employeeId,omitempty"`
	EmployeeName string     `json:"employeeName,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	IsActive     bool       `json:"isActive"`
}

// authResponse is returned by both login and register.
type authResponse struct {
	Token   string       `json:"token"`
	Expires time.Time    `json:"expires"`
	User    userResponse `json:"user"`
}

type tokenValidityResponse struct {
	Valid bool `json:"valid"`
}

func toUserResponse(p ports.UserProfile) userResponse {
	return userResponse{
		ID:           p.ID,
		Email:        p.Email,
		Role:         int(p.Role),
		RoleName:     p.RoleName,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		CreatedAt:    p.CreatedAt.UTC(),
		LastLoginAt:  p.LastLoginAt,
		IsActive:     p.IsActive,
	}
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		Token:   r.Token,
		Expires: r.Expires.UTC(),
		User:    toUserResponse(r.User),
	}
}

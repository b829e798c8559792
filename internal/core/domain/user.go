package domain

import "time"

// Role is the privilege tier of a user, ordered ascending. The numeric
// values are part of the wire contract (user.role in JSON payloads).
type Role int

const (
	RoleEmployee Role = 1
	RoleManager  Role = 2
	RoleHrAdmin  Role = 3
)

// String returns the canonical role name embedded in token claims and
// returned as roleName in user payloads.
func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return "Employee"
	case RoleManager:
		return "Manager"
	case RoleHrAdmin:
		return "HrAdmin"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the three defined tiers.
func (r Role) Valid() bool {
	return r >= RoleEmployee && r <= RoleHrAdmin
}

// AtLeast reports whether r carries at least the privilege of min.
// Privilege comparison is always ordinal, never by display string.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// ParseRole maps a role name back to its ordinal. The second return is
// false for unknown names.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "Employee":
		return RoleEmployee, true
	case "Manager":
		return RoleManager, true
	case "HrAdmin":
		return RoleHrAdmin, true
	default:
		return 0, false
	}
}

// User models an account in the credential store. PasswordHash never
// leaves the core layers; outward representations use ports.UserProfile.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int
	EmployeeName string // full name of the linked employee, populated on read paths
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLoginAt  *time.Time
}

package domain

import "errors"

// Sentinel errors for expected domain violations. The message strings of
// the conflict errors are returned verbatim to clients and are part of
// the API contract, hence the capitalization.
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserExists         = errors.New("User with this email already exists")
	ErrUnknownEmployee    = errors.New("Employee not found")
	ErrEmployeeLinked     = errors.New("Employee already has a user account")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInUse    = errors.New("Cannot delete department with employees")
	ErrDepartmentExists   = errors.New("Department with this name already exists")
	ErrUnknownDepartment  = errors.New("Department not found")
	ErrNegativeSalary     = errors.New("Salary must be zero or greater")
	ErrForbidden          = errors.New("access forbidden")
)

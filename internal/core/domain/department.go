package domain

import "time"

// Department groups employees. One employee may additionally act as its
// manager; deleting a department is refused while employees reference it.
type Department struct {
	ID          int
	Name        string
	Description string
	ManagerID   *int
	// ManagerName and EmployeeCount are populated on read paths.
	ManagerName   string
	EmployeeCount int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

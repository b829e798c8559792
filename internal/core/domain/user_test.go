package domain

import "testing"

func TestRole_String(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleEmployee, "Employee"},
		{RoleManager, "Manager"},
		{RoleHrAdmin, "HrAdmin"},
		{Role(0), "Unknown"},
		{Role(9), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.role.String(); got != tc.want {
			t.Fatalf("Role(%d).String() = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleEmployee.Valid() || !RoleManager.Valid() || !RoleHrAdmin.Valid() {
		t.Fatalf("defined roles must be valid")
	}
	if Role(0).Valid() || Role(4).Valid() || Role(-1).Valid() {
		t.Fatalf("out-of-range roles must be invalid")
	}
}

func TestRole_AtLeast(t *testing.T) {
	if !RoleHrAdmin.AtLeast(RoleEmployee) {
		t.Fatalf("HrAdmin should satisfy Employee gate")
	}
	if !RoleManager.AtLeast(RoleManager) {
		t.Fatalf("a role should satisfy its own gate")
	}
	if RoleEmployee.AtLeast(RoleManager) {
		t.Fatalf("Employee should not satisfy Manager gate")
	}
}

func TestParseRole(t *testing.T) {
	for name, want := range map[string]Role{
		"Employee": RoleEmployee,
		"Manager":  RoleManager,
		"HrAdmin":  RoleHrAdmin,
	} {
		got, ok := ParseRole(name)
		if !ok || got != want {
			t.Fatalf("ParseRole(%q) = %v, %v", name, got, ok)
		}
	}

	// Name matching is exact, not case-insensitive.
	if _, ok := ParseRole("employee"); ok {
		t.Fatalf("lowercased name should not parse")
	}
	if _, ok := ParseRole("Admin"); ok {
		t.Fatalf("unknown name should not parse")
	}
}

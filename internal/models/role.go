package models

import "fmt"

// Role is the business role a profile binds a principal to.
type Role string

const (
	RoleOwner        Role = "owner"
	RoleManager      Role = "manager"
	RoleStaff        Role = "staff"
	RoleReceptionist Role = "receptionist"
	RoleSuperAdmin   Role = "super_admin"
)

// ParseRole validates a role string coming from the database or a request.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleStaff, RoleReceptionist, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role can manage salon-level settings.
func (r Role) IsAdmin() bool {
	return r == RoleOwner || r == RoleManager
}

// RequiresTenant reports whether a session holding this role must carry a
// tenant binding. Super admins operate above tenant scope.
func (r Role) RequiresTenant() bool {
	return r != RoleSuperAdmin
}

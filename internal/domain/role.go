package domain

import "fmt"

// Role is the closed set of account roles. Authorization points switch on
// these variants; free-form role strings never leave the parsing boundary.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// ParseRole validates a wire-format role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Roles lists every variant, e.g. for validation messages.
func Roles() []Role {
	return []Role{RoleCustomer, RoleEmployee, RoleAdmin}
}

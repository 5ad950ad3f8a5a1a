// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin moderates the whole platform.
	RoleAdmin Role = "admin"
	// RoleBusiness owns businesses and publishes promotions.
	RoleBusiness Role = "business"
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBusiness, RoleUser:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a visitor may pick this role at registration.
func (r Role) IsSelfAssignable() bool {
	return r == RoleUser || r == RoleBusiness
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

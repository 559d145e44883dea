// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds in the system.
// Every user has exactly one role for its whole lifetime.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
	// RoleTeacher indicates a supervising teacher.
	RoleTeacher Role = "teacher"
	// RoleStudent indicates an intern student.
	RoleStudent Role = "student"
	// RoleWorkplace indicates a workplace supervisor account.
	RoleWorkplace Role = "workplace"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleWorkplace:
		return true
	default:
		return false
	}
}

// ProfileKind returns the profile kind that accounts of this role carry.
func (r Role) ProfileKind() ProfileKind {
	switch r {
	case RoleAdmin:
		return ProfileKindAdmin
	case RoleTeacher:
		return ProfileKindTeacher
	case RoleStudent:
		return ProfileKindStudent
	case RoleWorkplace:
		return ProfileKindWorkplace
	default:
		return ProfileKindNone
	}
}

// RoleIn checks whether the role appears in the allowed set.
func RoleIn(role Role, allowed []Role) bool {
	return slices.Contains(allowed, role)
}

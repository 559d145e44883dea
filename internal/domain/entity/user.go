// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It carries only credential and identity
// data shared by every role; role-specific data lives in the profile row
// referenced by Profile.
type User struct {
	ID           uuid.UUID  // The unique identifier for the account.
	Name         string     // The user's display name or real name.
	Email        string     // Login identifier, stored lowercase, unique.
	Username     string     // Login identifier, stored lowercase, unique. Empty for accounts that log in by email only.
	PasswordHash string     // Bcrypt digest of the password. Never serialized outward.
	Role         Role       // The account's single, immutable role.
	Profile      ProfileRef // Tagged reference to the role-specific profile row.
	Active       bool       // Deactivated accounts fail every credential and token check. Accounts are never hard-deleted.
	LastLoginAt  *time.Time // Stamped on each successful password login. Nil until the first login.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.

	// Loaded profile row matching Profile.Kind. At most one is non-nil;
	// all stay nil until the owning repository or usecase resolves the
	// reference.
	AdminProfile     *AdminProfile
	TeacherProfile   *TeacherProfile
	StudentProfile   *StudentProfile
	WorkplaceProfile *WorkplaceProfile
}

// CanAuthenticate reports whether the account may pass any credential or
// token check. Deactivation is the system's only revocation mechanism.
func (u *User) CanAuthenticate() bool {
	return u != nil && u.Active
}

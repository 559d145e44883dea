// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"internhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a unique constraint on email, username
// or student number rejects a write.
var ErrDuplicateUser = errors.New("duplicate user")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Lookup identifiers are matched case-insensitively; implementations store
// email and username lowercase.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a single user whose username or email equals the
	// given identifier, compared case-insensitively.
	FindByLogin(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether any user already holds either
	// identifier, compared case-insensitively.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// LinkProfile sets the user's profile reference.
	LinkProfile(ctx context.Context, userID uuid.UUID, ref entity.ProfileRef) error

	// StampLastLogin records a successful password login.
	StampLastLogin(ctx context.Context, userID uuid.UUID) error
}

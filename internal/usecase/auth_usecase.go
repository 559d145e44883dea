// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"internhub/internal/domain/entity"
	"internhub/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
// Identifier matches username or email case-insensitively; for students
// the student number also works.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// SessionOutput returns the authenticated user and a fresh token pair.
type SessionOutput struct {
	User *entity.User
	Pair *service.TokenPair
}

// AuthUsecase defines the interface for session-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials and issues a fresh token pair.
	// Unknown identifier, wrong password and deactivated account all fail
	// with the same credential error.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Resolve verifies an access token and loads its live user record.
	// Fails closed: missing token, bad token, unknown or deactivated user
	// all reject.
	Resolve(ctx context.Context, accessToken string) (*entity.User, error)

	// Refresh verifies a refresh token and rotates BOTH tokens for a user
	// that is still active.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)
}

package usecase

import (
	"context"

	"internhub/internal/domain/entity"
)

// InternshipUsecase defines the interface for internship queries.
type InternshipUsecase interface {
	// ListMine lists the placements the caller participates in, scoped to
	// the caller's own profile. Admins see nothing here; they have no
	// profile participating in placements.
	ListMine(ctx context.Context, actor *entity.User) ([]*entity.Internship, error)
}

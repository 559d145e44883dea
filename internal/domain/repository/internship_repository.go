package repository

import (
	"context"

	"internhub/internal/domain/entity"

	"github.com/google/uuid"
)

// InternshipRepository persists internship placements.
type InternshipRepository interface {
	// ListByProfile lists placements in which the given profile participates
	// as student, teacher or workplace.
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Internship, error)
}

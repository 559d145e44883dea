package repository

import (
	"context"
	"errors"

	"internhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile row cannot be found.
var ErrProfileNotFound = errors.New("profile not found")

// TeacherProfileRepository persists supervising teacher profiles.
type TeacherProfileRepository interface {
	// FindByID retrieves a teacher profile by its row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeacherProfile, error)

	// FindByUserID retrieves the teacher profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.TeacherProfile, error)

	// Create persists a new teacher profile.
	Create(ctx context.Context, profile *entity.TeacherProfile) error
}

// StudentProfileRepository persists intern student profiles.
type StudentProfileRepository interface {
	// FindByID retrieves a student profile by its row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentProfile, error)

	// FindByUserID retrieves the student profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error)

	// FindByStudentNumber retrieves a student profile by its natural key,
	// compared case-insensitively.
	FindByStudentNumber(ctx context.Context, studentNumber string) (*entity.StudentProfile, error)

	// ExistsByStudentNumber reports whether the natural key is already taken.
	ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error)

	// Create persists a new student profile.
	Create(ctx context.Context, profile *entity.StudentProfile) error
}

// WorkplaceProfileRepository persists workplace supervisor profiles.
type WorkplaceProfileRepository interface {
	// FindByID retrieves a workplace profile by its row id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkplaceProfile, error)

	// FindByUserID retrieves the workplace profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkplaceProfile, error)

	// Create persists a new workplace profile.
	Create(ctx context.Context, profile *entity.WorkplaceProfile) error
}

// AdminProfileRepository persists administrator profiles.
type AdminProfileRepository interface {
	// FindByUserID retrieves the admin profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AdminProfile, error)

	// Create persists a new admin profile.
	Create(ctx context.Context, profile *entity.AdminProfile) error
}

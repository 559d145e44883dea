package entity

import (
	"time"

	"github.com/google/uuid"
)

// InternshipStatus is the lifecycle state of an internship placement.
type InternshipStatus string

const (
	// InternshipStatusPending marks a placement awaiting teacher approval.
	InternshipStatusPending InternshipStatus = "pending"
	// InternshipStatusActive marks a placement currently in progress.
	InternshipStatusActive InternshipStatus = "active"
	// InternshipStatusCompleted marks a finished placement.
	InternshipStatusCompleted InternshipStatus = "completed"
)

// Internship links one student to one workplace under one supervising
// teacher. Listing is always scoped to the caller's own profile.
type Internship struct {
	ID          uuid.UUID
	StudentID   uuid.UUID // Student profile id.
	TeacherID   uuid.UUID // Supervising teacher profile id.
	WorkplaceID uuid.UUID // Workplace profile id.
	Status      InternshipStatus
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the given profile participates in the placement.
func (i *Internship) OwnedBy(profileID uuid.UUID) bool {
	if i == nil || profileID == uuid.Nil {
		return false
	}

	return i.StudentID == profileID || i.TeacherID == profileID || i.WorkplaceID == profileID
}

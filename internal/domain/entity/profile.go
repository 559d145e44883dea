package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfile holds data specific to administrator accounts.
type AdminProfile struct {
	ID        uuid.UUID // The unique identifier for this profile row.
	UserID    uuid.UUID // Back-reference to the owning User.
	Name      string
	Email     string
	Username  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeacherProfile holds data specific to supervising teachers.
type TeacherProfile struct {
	ID         uuid.UUID // The unique identifier for this profile row.
	UserID     uuid.UUID // Back-reference to the owning User.
	Name       string
	Email      string
	Phone      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StudentProfile holds data specific to intern students.
type StudentProfile struct {
	ID            uuid.UUID    // The unique identifier for this profile row.
	UserID        uuid.UUID    // Back-reference to the owning User.
	Name          string
	Email         string
	Phone         string
	StudentNumber string       // Natural key assigned by the school, unique, doubles as the login username.
	Level         StudentLevel // Curriculum level; constrains Year.
	Year          int          // Study year, cross-checked against Level.
	Department    string
	Classroom     string
	TeacherID     uuid.UUID // Supervising teacher's profile id.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WorkplaceStatus is the lifecycle state of a workplace partnership.
type WorkplaceStatus string

const (
	// WorkplaceStatusPending marks a workplace awaiting approval.
	WorkplaceStatusPending WorkplaceStatus = "pending"
	// WorkplaceStatusActive marks a workplace accepting interns.
	WorkplaceStatusActive WorkplaceStatus = "active"
	// WorkplaceStatusRetired marks a workplace no longer in the program.
	WorkplaceStatusRetired WorkplaceStatus = "retired"
)

// WorkplaceProfile holds data specific to workplace supervisor accounts.
type WorkplaceProfile struct {
	ID              uuid.UUID // The unique identifier for this profile row.
	UserID          uuid.UUID // Back-reference to the owning User.
	CompanyName     string
	BranchName      string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	ContactPosition string
	Address         string
	Status          WorkplaceStatus
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

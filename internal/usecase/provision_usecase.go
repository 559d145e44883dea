package usecase

import (
	"context"

	"internhub/internal/domain/entity"
)

// --- Input DTOs ---

// CreateStaffInput defines the data an administrator submits to provision
// a teacher or workplace account.
type CreateStaffInput struct {
	Role     entity.Role
	Name     string
	Username string
	Email    string
	Password string
	Phone    string

	// Teacher fields
	Department string

	// Workplace fields
	CompanyName     string
	BranchName      string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	ContactPosition string
	Address         string
	Notes           string
}

// CreateStudentInput defines the data a teacher submits to provision a
// student account. The student number doubles as the login username.
type CreateStudentInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	StudentNumber string
	Level         string
	Year          int
	Department    string
	Classroom     string
}

// --- Output DTOs ---

// ProvisionOutput returns the newly provisioned account.
// The credential is dormant: no tokens are issued and no mail is sent.
type ProvisionOutput struct {
	User *entity.User
}

// ProvisionUsecase defines the interface for account provisioning.
// Account creation is always a User row plus a role-specific profile row,
// written in one transaction and linked before commit.
type ProvisionUsecase interface {
	// CreateStaffUser provisions a teacher or workplace account.
	CreateStaffUser(ctx context.Context, input CreateStaffInput) (*ProvisionOutput, error)

	// CreateStudent provisions a student account supervised by the calling
	// teacher's profile.
	CreateStudent(ctx context.Context, actor *entity.User, input CreateStudentInput) (*ProvisionOutput, error)

	// EnsureAdmin creates the bootstrap administrator account if no user
	// holds its email or username yet.
	EnsureAdmin(ctx context.Context, name, username, email, password string) error
}

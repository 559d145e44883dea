package handler

import (
	"time"

	"internhub/internal/domain/entity"

	"github.com/google/uuid"
)

// userPayload is the wire shape of a user. The password hash never leaves
// the process.
type userPayload struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Username    string          `json:"username,omitempty"`
	Role        entity.Role     `json:"role"`
	Profile     *profilePayload `json:"profile,omitempty"`
	Active      bool            `json:"active"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// profilePayload flattens every role's profile fields into one shape;
// fields that do not apply to the kind stay empty and are omitted.
type profilePayload struct {
	Kind entity.ProfileKind `json:"kind"`
	ID   uuid.UUID          `json:"id"`

	Phone         string `json:"phone,omitempty"`
	Department    string `json:"department,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty"`
	Level         string `json:"level,omitempty"`
	Year          int    `json:"year,omitempty"`
	Classroom     string `json:"classroom,omitempty"`

	CompanyName     string `json:"companyName,omitempty"`
	BranchName      string `json:"branchName,omitempty"`
	ContactName     string `json:"contactName,omitempty"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	ContactPosition string `json:"contactPosition,omitempty"`
	Address         string `json:"address,omitempty"`
	Status          string `json:"status,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func newUserPayload(user *entity.User) *userPayload {
	payload := &userPayload{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Username:    user.Username,
		Role:        user.Role,
		Active:      user.Active,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
	payload.Profile = newProfilePayload(user)

	return payload
}

func newProfilePayload(user *entity.User) *profilePayload {
	if !user.Profile.IsLinked() {
		return nil
	}

	payload := &profilePayload{Kind: user.Profile.Kind, ID: user.Profile.ID}
	switch {
	case user.TeacherProfile != nil:
		payload.Phone = user.TeacherProfile.Phone
		payload.Department = user.TeacherProfile.Department
	case user.StudentProfile != nil:
		payload.Phone = user.StudentProfile.Phone
		payload.StudentNumber = user.StudentProfile.StudentNumber
		payload.Level = string(user.StudentProfile.Level)
		payload.Year = user.StudentProfile.Year
		payload.Department = user.StudentProfile.Department
		payload.Classroom = user.StudentProfile.Classroom
	case user.WorkplaceProfile != nil:
		payload.CompanyName = user.WorkplaceProfile.CompanyName
		payload.BranchName = user.WorkplaceProfile.BranchName
		payload.ContactName = user.WorkplaceProfile.ContactName
		payload.ContactEmail = user.WorkplaceProfile.ContactEmail
		payload.ContactPhone = user.WorkplaceProfile.ContactPhone
		payload.ContactPosition = user.WorkplaceProfile.ContactPosition
		payload.Address = user.WorkplaceProfile.Address
		payload.Status = string(user.WorkplaceProfile.Status)
		payload.Notes = user.WorkplaceProfile.Notes
	}

	return payload
}

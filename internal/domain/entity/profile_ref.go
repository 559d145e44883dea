package entity

import (
	"github.com/google/uuid"

	"internhub/internal/errors"
)

// ProfileKind names the table a profile reference points into.
type ProfileKind string

const (
	// ProfileKindNone marks a user whose profile has not been linked yet.
	// Provisioning creates the user first and links the profile inside the
	// same transaction, so this state is only visible mid-transaction.
	ProfileKindNone ProfileKind = ""
	// ProfileKindAdmin points into the admin profiles table.
	ProfileKindAdmin ProfileKind = "admin"
	// ProfileKindTeacher points into the teacher profiles table.
	ProfileKindTeacher ProfileKind = "teacher"
	// ProfileKindStudent points into the student profiles table.
	ProfileKindStudent ProfileKind = "student"
	// ProfileKindWorkplace points into the workplace profiles table.
	ProfileKindWorkplace ProfileKind = "workplace"
)

// IsValid checks if the ProfileKind is a valid linked value.
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileKindAdmin, ProfileKindTeacher, ProfileKindStudent, ProfileKindWorkplace:
		return true
	default:
		return false
	}
}

// ProfileRef is a tagged reference to a role-specific profile row.
// The kind picks the table, the ID picks the row. A zero ProfileRef
// means "not linked".
type ProfileRef struct {
	Kind ProfileKind
	ID   uuid.UUID
}

// NewProfileRef builds a reference and checks that the kind agrees with
// the owning user's role. The role/kind agreement is an invariant of the
// data model, not a validation of user input.
func NewProfileRef(role Role, id uuid.UUID) (ProfileRef, error) {
	kind := role.ProfileKind()
	if kind == ProfileKindNone {
		return ProfileRef{}, errors.Errorf("no profile kind for role %q", role)
	}
	if id == uuid.Nil {
		return ProfileRef{}, errors.New("profile id is nil")
	}

	return ProfileRef{Kind: kind, ID: id}, nil
}

// IsLinked reports whether the reference points at a profile row.
func (r ProfileRef) IsLinked() bool {
	return r.Kind != ProfileKindNone && r.ID != uuid.Nil
}

// AgreesWith checks the role/kind invariant for a linked reference.
func (r ProfileRef) AgreesWith(role Role) bool {
	return r.IsLinked() && r.Kind == role.ProfileKind()
}

package usecase

import (
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
)

// Authorize is the single role gate. A nil user is an authentication
// failure, not an authorization one. An empty allow-list admits any
// authenticated user.
func Authorize(user *entity.User, allowed ...entity.Role) error {
	if user == nil {
		return domainerrors.ErrSessionMissing
	}

	if len(allowed) == 0 {
		return nil
	}

	if entity.RoleIn(user.Role, allowed) {
		return nil
	}

	return domainerrors.ErrForbidden
}

package auth

import (
	"github.com/google/uuid"

	"internhub/internal/errors"
)

// uuidFromSubject parses the sub claim into a user id.
func uuidFromSubject(sub string) (uuid.UUID, error) {
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse token subject")
	}

	return id, nil
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	deliverycontext "internhub/internal/delivery/context"
	domainerrors "internhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_ValidationErrorListsAllFields(t *testing.T) {
	m := newTestErrorMiddleware()

	c, rec := newTestContext(http.MethodPost, "/admin/users")
	m.HandleHTTPError(domainerrors.NewValidationError(
		domainerrors.FieldViolation{Field: "email", Reason: "must be a valid email address"},
		domainerrors.FieldViolation{Field: "password", Reason: "must be at least 8 characters"},
	), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
	assert.Contains(t, body, "must be at least 8 characters")
}

func TestErrorMiddleware_CredentialErrorStaysGeneric(t *testing.T) {
	m := newTestErrorMiddleware()

	// Wrapped the way handlers return it.
	c, rec := newTestContext(http.MethodPost, "/auth/login")
	m.HandleHTTPError(errors.WithStack(domainerrors.ErrInvalidCredentials), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "INVALID_CREDENTIALS")
	assert.NotContains(t, body, "details")
}

func TestErrorMiddleware_SessionFailuresRenderIdentically(t *testing.T) {
	m := newTestErrorMiddleware()

	// A missing cookie, a bad token, a stale refresh token and a
	// deactivated account must all produce the same body, so a caller
	// cannot tell which check rejected the request.
	failures := []error{
		domainerrors.ErrSessionMissing,
		errors.WithStack(domainerrors.ErrTokenInvalid),
		errors.WithStack(domainerrors.ErrTokenKindMismatch),
		errors.WithStack(domainerrors.ErrRefreshTokenInvalid),
		errors.WithStack(domainerrors.ErrUserInactive),
	}

	bodies := make([]string, 0, len(failures))
	for _, failure := range failures {
		c, rec := newTestContext(http.MethodGet, "/auth/me")
		deliverycontext.SetRequestID(c, "test-request")
		m.HandleHTTPError(failure, c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
	assert.Contains(t, bodies[0], "UNAUTHORIZED")
	assert.Contains(t, bodies[0], "Authentication required")
}

func TestErrorMiddleware_UnknownErrorHidesInternals(t *testing.T) {
	m := newTestErrorMiddleware()

	c, rec := newTestContext(http.MethodGet, "/internships")
	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := newTestErrorMiddleware()

	c, rec := newTestContext(http.MethodGet, "/health")
	c.Response().WriteHeader(http.StatusOK)

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

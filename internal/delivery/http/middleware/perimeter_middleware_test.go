package middleware

import (
	"net/http"
	"testing"

	"internhub/internal/delivery/http/session"
	"internhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perimeterToken builds a syntactically valid JWT carrying the given role.
// The signing key is irrelevant: the filter never verifies signatures.
func perimeterToken(t *testing.T, role string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
	}).SignedString([]byte("unchecked"))
	require.NoError(t, err)

	return token
}

func TestPerimeterFilter_MissingCookieRedirectsToLogin(t *testing.T) {
	f := NewPerimeterFilter()

	c, rec := newTestContext(http.MethodGet, "/admin/users")

	require.NoError(t, f.Gate(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestPerimeterFilter_UndecodableTokenRedirectsToLogin(t *testing.T) {
	f := NewPerimeterFilter()

	c, rec := newTestContext(http.MethodGet, "/admin/users")
	c.Request().AddCookie(&http.Cookie{Name: session.AccessCookieName, Value: "not-a-jwt"})

	require.NoError(t, f.Gate(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestPerimeterFilter_WrongRoleRedirectsToUnauthorized(t *testing.T) {
	f := NewPerimeterFilter()

	c, rec := newTestContext(http.MethodGet, "/admin/users")
	c.Request().AddCookie(&http.Cookie{
		Name:  session.AccessCookieName,
		Value: perimeterToken(t, string(entity.RoleStudent)),
	})

	nextCalled := false
	err := f.Gate(entity.RoleAdmin)(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/unauthorized", rec.Header().Get("Location"))
}

func TestPerimeterFilter_MatchingRolePassesThrough(t *testing.T) {
	f := NewPerimeterFilter()

	c, rec := newTestContext(http.MethodPost, "/teacher/students")
	c.Request().AddCookie(&http.Cookie{
		Name:  session.AccessCookieName,
		Value: perimeterToken(t, string(entity.RoleTeacher)),
	})

	require.NoError(t, f.Gate(entity.RoleTeacher)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

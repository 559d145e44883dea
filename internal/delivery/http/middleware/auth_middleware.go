package middleware

import (
	"strings"

	"internhub/internal/delivery/http/session"
	"internhub/internal/domain/entity"
	"internhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUser is the echo context key holding the resolved user.
const ContextKeyUser = "user"

// AuthMiddleware resolves the session cookie into a live user record and
// gates routes by role. Resolution is authoritative: signature, expiry and
// the account's current active flag are all checked on every request.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the access token and stores the user on the context.
// The token is read from the session cookie, with an Authorization Bearer
// fallback for non-browser clients.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := session.ReadAccessToken(c)
		if token == "" {
			token = bearerToken(c)
		}

		user, err := m.authUC.Resolve(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

// RequireRole gates the route to the given roles. It must run AFTER
// Authenticate. An empty role list admits any authenticated user.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := usecase.Authorize(CurrentUser(c), roles...); err != nil {
				return errors.WithStack(err)
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(ContextKeyUser).(*entity.User)

	return user
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return token
}

package middleware

import (
	"net/http"

	"internhub/internal/delivery/http/session"
	"internhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// PerimeterFilter routes unauthenticated or wrong-role visitors of
// role-prefixed page groups to /login or /unauthorized BEFORE any page
// renders. It decodes the access cookie's payload without verifying the
// signature: this is a low-trust routing hint only, and every handler behind
// it still runs the authoritative Authenticate/RequireRole chain.
type PerimeterFilter struct {
	parser *jwt.Parser
}

// NewPerimeterFilter is the constructor for PerimeterFilter.
func NewPerimeterFilter() *PerimeterFilter {
	return &PerimeterFilter{parser: jwt.NewParser()}
}

// perimeterClaims mirrors the token payload fields the filter cares about.
type perimeterClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Gate redirects visitors whose cookie payload does not claim one of the
// given roles. Missing or undecodable cookies go to /login; a decodable
// cookie with the wrong role goes to /unauthorized.
func (f *PerimeterFilter) Gate(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.ReadAccessToken(c)
			if token == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			claims := &perimeterClaims{}
			if _, _, err := f.parser.ParseUnverified(token, claims); err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			if !entity.RoleIn(entity.Role(claims.Role), roles) {
				return c.Redirect(http.StatusFound, "/unauthorized")
			}

			return next(c)
		}
	}
}

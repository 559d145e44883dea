// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/response"
	"internhub/internal/delivery/http/session"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *session.CookieManager
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{authUC: authUC, cookies: cookies}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the password login request. The identifier field accepts a
// username, an email or a student number.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Attach(c, output.Pair)

	return response.Success(c, http.StatusOK, newUserPayload(output.User))
}

// Me returns the caller's own account. Relies on the Authenticate middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrSessionMissing)
	}

	return response.Success(c, http.StatusOK, newUserPayload(user))
}

// Refresh rotates both session tokens from the refresh cookie.
// On failure the cookies are left untouched; only logout clears them.
func (h *AuthHandler) Refresh(c echo.Context) error {
	output, err := h.authUC.Refresh(c.Request().Context(), session.ReadRefreshToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Attach(c, output.Pair)

	return response.Success(c, http.StatusOK, newUserPayload(output.User))
}

// Logout clears both session cookies. It succeeds regardless of whether a
// valid session was presented.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

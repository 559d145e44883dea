// Package session moves token pairs on and off the wire as cookies.
package session

import (
	"net/http"

	"internhub/config"
	"internhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Cookie names the frontend reads and the middleware trusts.
const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// CookieManager sets and clears the session cookie pair.
// Cookies are httpOnly and SameSite=Lax; Secure is added outside development
// so local HTTP still works.
type CookieManager struct {
	tokenService service.TokenService
	secure       bool
}

// NewCookieManager is the constructor for CookieManager.
func NewCookieManager(cfg *config.Config, tokenService service.TokenService) *CookieManager {
	return &CookieManager{
		tokenService: tokenService,
		secure:       cfg.Env.Env == "production",
	}
}

// Attach writes both session cookies with lifetimes matching the token TTLs.
func (m *CookieManager) Attach(c echo.Context, pair *service.TokenPair) {
	c.SetCookie(m.cookie(AccessCookieName, pair.AccessToken, int(m.tokenService.AccessTokenDuration().Seconds())))
	c.SetCookie(m.cookie(RefreshCookieName, pair.RefreshToken, int(m.tokenService.RefreshTokenDuration().Seconds())))
}

// Clear overwrites both cookies so the browser drops them immediately.
func (m *CookieManager) Clear(c echo.Context) {
	c.SetCookie(m.cookie(AccessCookieName, "", -1))
	c.SetCookie(m.cookie(RefreshCookieName, "", -1))
}

func (m *CookieManager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ReadAccessToken returns the access cookie's value, or "" when absent.
func ReadAccessToken(c echo.Context) string {
	cookie, err := c.Cookie(AccessCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// ReadRefreshToken returns the refresh cookie's value, or "" when absent.
func ReadRefreshToken(c echo.Context) string {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

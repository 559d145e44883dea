// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"internhub/config"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/service"
	"internhub/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with disjoint secrets, so neither
// verifies under the other's key even before the kind claim is checked.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, err := cfg.Auth.AccessTTL()
	if err != nil {
		return nil, errors.Wrap(err, "access token ttl")
	}
	refreshTTL, err := cfg.Auth.RefreshTTL()
	if err != nil {
		return nil, errors.Wrap(err, "refresh token ttl")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// IssuePair creates a fresh access and refresh token for the user.
func (s *jwtService) IssuePair(user *entity.User) (*service.TokenPair, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}

	accessToken, err := s.sign(user, user.Role, s.accessTTL, s.accessSecret, service.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	// Refresh tokens carry no role; identity is re-resolved on rotation.
	refreshToken, err := s.sign(user, "", s.refreshTTL, s.refreshSecret, service.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess checks an access token and returns its claims.
func (s *jwtService) VerifyAccess(tokenString string) (*service.Claims, error) {
	return s.verify(tokenString, s.accessSecret, service.TokenKindAccess)
}

// VerifyRefresh checks a refresh token and returns its claims.
func (s *jwtService) VerifyRefresh(tokenString string) (*service.Claims, error) {
	return s.verify(tokenString, s.refreshSecret, service.TokenKindRefresh)
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// tokenClaims is the wire shape of the custom claims.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// sign is a private helper to create a JWT with specific claims.
func (s *jwtService) sign(user *entity.User, role entity.Role, ttl time.Duration, secret, kind string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role.String(),
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// verify parses a token under the given secret and checks the kind claim.
func (s *jwtService) verify(tokenString, secret, wantKind string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	if claims.Kind != wantKind {
		return nil, errors.Wrapf(domainerrors.ErrTokenKindMismatch, "unexpected token kind %q", claims.Kind)
	}

	userID, err := uuidFromSubject(claims.Subject)
	if err != nil {
		return nil, err
	}

	return &service.Claims{
		UserID:           userID,
		Role:             entity.Role(claims.Role),
		Kind:             claims.Kind,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

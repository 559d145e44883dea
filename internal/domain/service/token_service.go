package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"internhub/internal/domain/entity"
)

// Token kinds. Access and refresh tokens are signed with disjoint secrets
// and additionally carry the kind as a claim, so a token of one kind can
// never pass verification as the other.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// Claims defines the custom claims carried by session tokens.
// Refresh tokens omit the role; identity is re-resolved on rotation.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Kind   string
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens issued for one session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for issuing and verifying session
// tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// IssuePair creates a fresh access and refresh token for the user.
	IssuePair(user *entity.User) (*TokenPair, error)

	// VerifyAccess checks an access token and returns its claims.
	VerifyAccess(tokenString string) (*Claims, error)

	// VerifyRefresh checks a refresh token and returns its claims.
	VerifyRefresh(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}

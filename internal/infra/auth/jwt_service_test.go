package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/config"
	"internhub/internal/domain/entity"
	domainerrors "internhub/internal/domain/errors"
	"internhub/internal/domain/service"
)

func testJWTConfig(accessTTL, refreshTTL string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}

	return cfg
}

func testUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Role:   role,
		Active: true,
	}
}

func TestJWTService_IssueAndVerifyPair(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("15m", "30d"))
	require.NoError(t, err)

	user := testUser(entity.RoleTeacher)

	pair, err := svc.IssuePair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, entity.RoleTeacher, accessClaims.Role)
	assert.Equal(t, service.TokenKindAccess, accessClaims.Kind)

	refreshClaims, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role) // refresh tokens carry no role
	assert.Equal(t, service.TokenKindRefresh, refreshClaims.Kind)
}

func TestJWTService_KindsDoNotCross(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("15m", "30d"))
	require.NoError(t, err)

	pair, err := svc.IssuePair(testUser(entity.RoleStudent))
	require.NoError(t, err)

	// An access token must not verify as a refresh token and vice versa.
	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_KindCheckFailsClosedUnderSharedSecret(t *testing.T) {
	// With one shared secret both tokens verify cryptographically, so the
	// kind claim is the only thing keeping them apart.
	cfg := testJWTConfig("15m", "30d")
	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	pair, err := svc.IssuePair(testUser(entity.RoleStudent))
	require.NoError(t, err)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenKindMismatch)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenKindMismatch)
}

func TestJWTService_DisjointSecrets(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("15m", "30d"))
	require.NoError(t, err)

	other := testJWTConfig("15m", "30d")
	other.SecretKey.Access = "a_completely_different_access_secret_string"
	other.SecretKey.Refresh = "a_completely_different_refresh_secret_string"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	pair, err := svc.IssuePair(testUser(entity.RoleAdmin))
	require.NoError(t, err)

	_, err = otherSvc.VerifyAccess(pair.AccessToken)
	assert.Error(t, err)

	_, err = otherSvc.VerifyRefresh(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("0s", "0s"))
	require.NoError(t, err)

	pair, err := svc.IssuePair(testUser(entity.RoleWorkplace))
	require.NoError(t, err)

	time.Sleep(time.Second)

	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.VerifyRefresh(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("15m", "30d"))
	require.NoError(t, err)

	claims, err := svc.VerifyAccess("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := testJWTConfig("15m", "30d")
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("15m", "30d"))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 30*24*time.Hour, svc.RefreshTokenDuration())
}

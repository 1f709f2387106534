package jwt

import (
	"testing"
	"time"

	"hospital-management/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: expiry, RefreshExpiry: 2 * expiry})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret", time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "nurse@hospital.test", 3)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "nurse@hospital.test", claims.Email)
	assert.Equal(t, 3, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)

	refresh, _, err := svc.GenerateRefreshToken(userID, "nurse@hospital.test", 3)
	require.NoError(t, err)
	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newService("secret", time.Minute)

	token, _, err := newService("other", time.Minute).GenerateAccessToken(uuid.New(), "a@b.c", 1)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err, "wrong secret")

	expired, _, err := newService("secret", -time.Minute).GenerateAccessToken(uuid.New(), "a@b.c", 1)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.Error(t, err, "expired")

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenKey(t *testing.T) {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	assert.Equal(t, "access_token:11111111-2222-3333-4444-555555555555:abc", TokenKey(AccessToken, userID, "abc"))

	claims := Claims{UserID: userID, TokenType: RefreshToken, TokenID: "xyz"}
	assert.Equal(t, "refresh_token:11111111-2222-3333-4444-555555555555:xyz", claims.Key())
}

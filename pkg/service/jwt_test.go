// Файл: pkg/service/jwt_test.go
package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-system/internal/authz"
	apperrors "donation-system/pkg/errors"
)

const testSecret = "test-secret-key"

func newTestJWTService(accessTTL, refreshTTL time.Duration) JWTService {
	return NewJWTService(testSecret, accessTTL, refreshTTL, zap.NewNop())
}

func testIdentity() Identity {
	return Identity{
		UserID: 42,
		Email:  "editor@donation.local",
		Fio:    "Тестовый Редактор",
		Role:   authz.RoleEditor,
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour*24*7)

	token, err := svc.IssueAccessToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "editor@donation.local", claims.Email)
	assert.Equal(t, authz.RoleEditor, claims.Role)
	assert.False(t, claims.IsRefreshToken)
	assert.NotEmpty(t, claims.ID, "у каждого токена должен быть уникальный jti")
}

func TestJWTService_RefreshTokenIsMarked(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour*24*7)

	token, err := svc.IssueRefreshToken(testIdentity())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestJWTService_GenerateTokensPair(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour*24*7)

	accessToken, refreshToken, err := svc.GenerateTokens(testIdentity())
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)

	assert.False(t, accessClaims.IsRefreshToken)
	assert.True(t, refreshClaims.IsRefreshToken)
	assert.Equal(t, accessClaims.UserID, refreshClaims.UserID)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute, time.Hour)

	token, err := svc.IssueAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.True(t, apperrors.IsAuthTokenError(err))
}

func TestJWTService_TamperedPayload(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour)

	token, err := svc.IssueAccessToken(testIdentity())
	require.NoError(t, err)

	// Меняем один символ полезной нагрузки: подпись перестает сходиться.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[10] == 'A' {
		payload[10] = 'B'
	} else {
		payload[10] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.ValidateToken(tampered)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthTokenError(err))
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour)
	otherSvc := NewJWTService("another-secret", time.Minute*15, time.Hour, zap.NewNop())

	token, err := otherSvc.IssueAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenSignature)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := svc.ValidateToken(garbage)
		require.Error(t, err, "мусор %q должен отклоняться", garbage)
		assert.True(t, apperrors.IsAuthTokenError(err))
	}
}

func TestJWTService_TTLAccessors(t *testing.T) {
	svc := newTestJWTService(time.Minute*15, time.Hour*168)

	assert.Equal(t, time.Minute*15, svc.GetAccessTokenTTL())
	assert.Equal(t, time.Hour*168, svc.GetRefreshTokenTTL())
}

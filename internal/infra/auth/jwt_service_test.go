package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, []string{"admin"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "storefront", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ShortSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "short"}})
	require.Error(t, err)
}

func TestJWTService_NonPositiveTTL(t *testing.T) {
	_, err := newTestService(t).GenerateToken(uuid.New(), nil, 0)
	require.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	expired := newTestService(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(userID, nil, time.Hour)
	require.NoError(t, err)

	otherSecret := &jwtService{accessSecret: []byte("another_secret_key_long_enough"), now: time.Now}
	foreignToken, err := otherSecret.GenerateToken(userID, nil, time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": userID.String(),
		"iss": "storefront",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"iss": "storefront",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"iss": "storefront",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not.a.jwt",
		"expired":        expiredToken,
		"foreign secret": foreignToken,
		"alg none":       noneToken,
		"wrong issuer":   wrongIssuer,
		"no expiry":      noExpiry,
		"bad subject":    badSubject,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.ValidateToken(token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

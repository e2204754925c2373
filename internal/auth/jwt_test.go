package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("access-secret", "refresh-secret", 15, 7)

	token, err := GenerateAccessToken("user-1", "jamie@example.com", []string{"USER", "ADMIN"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jamie@example.com", claims.Email)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.Roles)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	Init("access-secret", "refresh-secret", 15, 7)

	token, expiresAt, err := GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	Init("access-secret", "refresh-secret", 15, 7)

	accessToken, err := GenerateAccessToken("user-1", "jamie@example.com", nil)
	require.NoError(t, err)
	refreshToken, _, err := GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = ParseRefreshToken(accessToken)
	assert.Error(t, err, "access token must not parse as refresh token")

	_, err = ParseAccessToken(refreshToken)
	assert.Error(t, err, "refresh token must not parse as access token")
}

func TestParseAccessToken_Invalid(t *testing.T) {
	Init("access-secret", "refresh-secret", 15, 7)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				claims := Claims{
					UserID: "user-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
					SignedString([]byte("other-secret"))
				require.NoError(t, err)
				return signed
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				claims := Claims{
					UserID: "user-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
					},
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
					SignedString([]byte("access-secret"))
				require.NoError(t, err)
				return signed
			},
		},
		{
			name: "wrong signing method",
			token: func(t *testing.T) string {
				claims := Claims{UserID: "user-1"}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccessToken(tt.token(t))
			assert.Error(t, err)
		})
	}
}

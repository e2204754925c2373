package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access-token payload: identity plus the role codes the
// principal held at issue time.
type Claims struct {
	UserID string   `json:"id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the user id; roles are re-read from the
// store at refresh time so stale grants never survive in the token.
type RefreshClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

var (
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
)

var ErrInvalidToken = errors.New("invalid token")

// Init wires the signing secrets and lifetimes. Must run before any
// token is issued or parsed.
func Init(secret, refresh string, accessTTLMin, refreshTTLDays int) {
	accessSecret = []byte(secret)
	refreshSecret = []byte(refresh)
	if accessTTLMin <= 0 {
		accessTTLMin = 15
	}
	if refreshTTLDays <= 0 {
		refreshTTLDays = 7
	}
	accessTTL = time.Duration(accessTTLMin) * time.Minute
	refreshTTL = time.Duration(refreshTTLDays) * 24 * time.Hour
}

// GenerateAccessToken signs a short-lived access token.
func GenerateAccessToken(userID, email string, roles []string) (string, error) {
	if len(accessSecret) == 0 {
		return "", errors.New("jwt secret not initialized")
	}

	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret)
}

// GenerateRefreshToken signs a long-lived refresh token and returns its
// expiry so the caller can persist it for revocation checks.
func GenerateRefreshToken(userID string) (string, time.Time, error) {
	if len(refreshSecret) == 0 {
		return "", time.Time{}, errors.New("jwt refresh secret not initialized")
	}

	now := time.Now()
	expiresAt := now.Add(refreshTTL)
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(refreshSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken validates signature and expiry and returns claims.
func ParseAccessToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return accessSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token against the refresh secret.
func ParseRefreshToken(tokenStr string) (*RefreshClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &RefreshClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return refreshSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*RefreshClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

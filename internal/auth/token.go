package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roomly/api/internal/config"
	"github.com/roomly/api/internal/models"
)

// Claims carried by both token classes. No profile data is embedded: the
// profile is re-fetched on every request so status and profile changes
// take effect without waiting for token expiry.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

var (
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
)

// Setup installs the signing configuration. Must be called once at
// startup before any token is issued or verified.
func Setup(cfg *config.Config) {
	accessSecret = []byte(cfg.JWTAccessSecret)
	refreshSecret = []byte(cfg.JWTRefreshSecret)
	accessTTL = cfg.AccessTokenTTL
	refreshTTL = cfg.RefreshTokenTTL
}

func GenerateAccessToken(u *models.User) (string, error) {
	return signToken(u, accessSecret, accessTTL)
}

func GenerateRefreshToken(u *models.User) (string, error) {
	return signToken(u, refreshSecret, refreshTTL)
}

// ParseAccessToken verifies signature and expiry against the access
// secret. A refresh token fails here: the classes use distinct secrets.
func ParseAccessToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, accessSecret)
}

func ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, refreshSecret)
}

func signToken(u *models.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseToken(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

// TokenTTL is the validity window of an issued session token.
const TokenTTL = 24 * time.Hour

// CookieName carries the session token for browser clients; API clients may
// send the same token as a Bearer header instead.
const CookieName = "restaurant-inventory-auth"

var jwtSecret = []byte("fallback_secret_for_development_only")

var ErrInvalidToken = errors.New("invalid or expired token")

// SetSecret installs the signing key from configuration. Call once at startup
// before any token is issued or verified.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateToken issues a signed session token carrying the actor's identity.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies a raw token string and returns its claims.
func ParseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenClaims parses an Authorization header of the form "Bearer <token>".
func TokenClaims(authorization string) (jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, ErrInvalidToken
	}
	return ParseToken(strings.TrimPrefix(authorization, "Bearer "))
}

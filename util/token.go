package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/andriwidianto/securewatch/model"
	"github.com/golang-jwt/jwt/v4"
)

// TokenLifetime is the fixed validity window for issued bearer tokens.
// There is no revocation list: once issued, a token stays valid until this
// window elapses even if the underlying account changes.
const TokenLifetime = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the signed claim set carried by a bearer token.
type TokenClaims struct {
	UserID   string     `json:"userId"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the user, expiring after
// TokenLifetime.
func IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetJWTSecretByte())
}

// ParseToken verifies a token string and returns its claims. It fails with
// ErrInvalidToken on signature mismatch, malformed structure, or expiry.
// Claim freshness against the credential store is the caller's job.
func ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return GetJWTSecretByte(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

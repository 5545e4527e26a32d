// Package auth mints and verifies the short-lived admin tokens that gate the
// mutation routes. Tokens are HMAC-signed with a key both sides derive from
// the admin-secret fingerprint, so the secret itself is never transmitted.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const roleAdmin = "admin"

// Claims carries the registered claims plus the single capability role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateToken signs an admin token valid for validityDuration.
func GenerateToken(signingKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: roleAdmin,
	})

	return token.SignedString(signingKey)
}

// VerifyAdminToken parses and validates a token string. It returns
// common.ErrTokenExpired for expired tokens and common.ErrInvalidToken for
// everything else that fails verification, including a missing admin role.
func VerifyAdminToken(tokenString string, signingKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid || claims.Role != roleAdmin {
		return common.ErrInvalidToken
	}
	return nil
}

// Package auth issues and verifies the signed tokens that authenticate
// API requests. Tokens are HS256 JWTs; verification is pure computation
// and never touches storage.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tahamajeedkhan/SafeRice-Server/internal/common"
)

// Claims holds the registered JWT claims plus the authenticated user's
// identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64
	Username string
}

// Issue signs a token for the given user, valid from now for
// validityDuration. Every token gets a fresh random ID (jti).
func Issue(userID int64, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			ID:        uuid.NewString(),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses and validates tokenString against secretKey and returns the
// embedded claims.
//
// Failures are reported as sentinels from the common package:
//   - common.ErrTokenExpired: the token was valid once but its lifetime is over.
//   - common.ErrTokenSignatureInvalid: signature mismatch, including tokens
//     signed with any method other than HS256.
//   - common.ErrTokenMalformed: everything that cannot even be parsed.
func Verify(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	return claims, nil
}

// Package cryptox wraps password hashing for account credentials.
package cryptox

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied when the caller does not
// configure one.
const DefaultCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password at the given cost.
//
// The hash embeds its own random salt and the cost parameter, so the single
// returned string is all that needs to be stored. Hashing the same password
// twice produces different strings.
//
// Parameters:
//   - password: the plaintext password to hash.
//   - cost: bcrypt work factor; values outside [bcrypt.MinCost, bcrypt.MaxCost]
//     cause an error.
//
// Returns:
//   - the encoded hash suitable for storage, or an error.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

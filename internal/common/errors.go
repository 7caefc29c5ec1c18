// Package common defines shared constants and sentinel errors used across
// SafeRice components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorValidation      = errors.New("validation error")
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Credential errors. Unknown username and wrong password map to the
	// same value so the caller cannot tell which part was wrong.
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// Session-log errors.
	ErrorNoActiveSession = errors.New("no active session")

	// Token lifecycle errors.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

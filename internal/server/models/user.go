// Package models defines server-side data models persisted in the database,
// plus the request bodies the HTTP layer decodes into.
package models

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON output.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

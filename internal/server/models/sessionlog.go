package models

import "time"

// SessionRecord is one row of the login/logout log. LogoutTime and Duration
// stay nil while the session is open; both are set exactly once, at logout,
// and the record never reopens.
type SessionRecord struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	LoginTime  time.Time  `json:"login_time"`
	LogoutTime *time.Time `json:"logout_time,omitempty"`
	Duration   *int64     `json:"duration,omitempty"`
}

package models

import "time"

// RefreshToken is an opaque, single-use token that can be exchanged for a
// new token pair until Expires.
type RefreshToken struct {
	Token     string
	UserID    string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token can no longer be used at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}

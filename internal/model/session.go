package model

import "time"

// Session is the server-side state for an authenticated admin.
// There is a single shared admin credential, so a session carries no user
// identity — holding a live session IS being authenticated.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session TTL has elapsed at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

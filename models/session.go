package models

import "time"

// Session is the client-side authenticated state. It is passed explicitly to
// every call that needs the caller's identity.
type Session struct {
	UserID    int64
	Login     string
	Token     string
	CreatedAt time.Time
}

// IsZero reports whether the session is empty (user not logged in).
func (s Session) IsZero() bool {
	return s.UserID == 0 || s.Token == ""
}

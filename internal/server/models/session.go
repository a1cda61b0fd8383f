package models

import "time"

// Session is the server-held half of a login: the token carries ID, the
// registry maps it to a user until Expires.
type Session struct {
	ID      string
	UserID  string
	Expires time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.Expires)
}

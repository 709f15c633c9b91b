package model

import "time"

// Session is a browser session on the dashboard server: the pairing of a
// bearer token with the identity derived from it, plus cookie lifetime
// bookkeeping. The token itself is never exposed via JSON.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"`
	TokenExp  time.Time `json:"-"`
	Lang      string    `json:"lang,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity returns the identity half of the session.
func (s *Session) Identity() Identity {
	return Identity{Email: s.Email, Name: s.Name, Role: s.Role}
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsTokenExpired reports whether the bearer token has expired. A zero
// expiry (no exp claim) is treated as not expired; the server remains
// authoritative either way.
func (s *Session) IsTokenExpired() bool {
	if s.TokenExp.IsZero() {
		return false
	}
	return time.Now().After(s.TokenExp)
}

// IsAdmin reports whether the session has admin role.
func (s *Session) IsAdmin() bool {
	return s.Role.IsAdmin()
}

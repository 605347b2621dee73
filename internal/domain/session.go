package domain

import "time"

// User is the signed-in account as reported by the auth provider
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name,omitempty"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// DisplayName returns the name shown in the header.
// Falls back to the email, then to a generic label.
func (u *User) DisplayName() string {
	if u == nil {
		return "User"
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// Session represents an authenticated context
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

// Valid reports whether the session carries a user and has not expired at now.
// A zero ExpiresAt never expires.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.User == nil {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}

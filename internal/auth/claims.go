package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riordanpawley/bennu/internal/domain"
)

// Claims is the subset of the provider's access token we read
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// UserMetadata holds profile fields set at sign-up
type UserMetadata struct {
	FullName string `json:"full_name"`
}

// ParseClaims decodes an access token. The signature is not checked.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}

// Expiry returns the token expiry, or the zero time when absent
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// User builds a domain user from the token claims
func (c *Claims) User() *domain.User {
	return &domain.User{
		ID:             c.Subject,
		Email:          c.Email,
		FullName:       c.UserMetadata.FullName,
		EmailConfirmed: true,
	}
}

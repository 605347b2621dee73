// Package auth talks to the hosted authentication provider and keeps the
// local session file.
package auth

import (
	"context"

	"github.com/riordanpawley/bennu/internal/domain"
)

// Profile carries sign-up metadata stored with the account
type Profile struct {
	FullName string
}

// SignUpResult reports the created account. When EmailConfirmed is false the
// user must follow the verification link before signing in.
type SignUpResult struct {
	User           *domain.User
	EmailConfirmed bool
	Session        *domain.Session
}

// Provider is the authentication collaborator used by the app
type Provider interface {
	SignUp(ctx context.Context, email, password string, profile Profile) (*SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	ResendVerification(ctx context.Context, email string) error
	// CurrentSession returns nil with no error when nobody is signed in
	CurrentSession(ctx context.Context) (*domain.Session, error)
	SignOut(ctx context.Context) error
}

package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  AuthError
		want string
	}{
		{
			name: "with message",
			err:  AuthError{Op: "signin", Status: 400, Message: "Invalid login credentials"},
			want: "auth signin: Invalid login credentials",
		},
		{
			name: "with underlying error",
			err:  AuthError{Op: "signup", Err: errors.New("connection refused")},
			want: "auth signup: connection refused",
		},
		{
			name: "with status only",
			err:  AuthError{Op: "resend", Status: 500},
			want: "auth resend failed with status 500",
		},
		{
			name: "minimal",
			err:  AuthError{Op: "logout"},
			want: "auth logout failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AuthError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthError_Display(t *testing.T) {
	err := &AuthError{Op: "signin", Message: "Email not confirmed"}
	if got := err.Display(); got != "Email not confirmed" {
		t.Errorf("Display() = %q, want provider message", got)
	}

	err = &AuthError{Op: "signin", Err: errors.New("timeout")}
	if got := err.Display(); got != "auth signin: timeout" {
		t.Errorf("Display() = %q, want full error", got)
	}
}

func TestAuthError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &AuthError{Op: "test", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is(err, underlying) = false, want true")
	}
}

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"validation", &ValidationError{Field: "title", Message: "is required"}, ErrValidation, "invalid title: is required"},
		{"validation without field", &ValidationError{Message: "bad"}, ErrValidation, "invalid input: bad"},
		{"not found", &NotFoundError{ID: "t-9"}, ErrNotFound, `task "t-9" not found`},
		{"conflict", &ConflictError{ID: "t-1"}, ErrConflict, `task "t-1" already exists`},
		{"auth", &AuthError{Op: "signin"}, ErrAuth, "auth signin failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			if got := tt.err.Error(); got != tt.message {
				t.Errorf("Error() = %q, want %q", got, tt.message)
			}
		})
	}

	if errors.Is(&NotFoundError{ID: "x"}, ErrConflict) {
		t.Error("NotFoundError must not match ErrConflict")
	}
}

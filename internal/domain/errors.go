package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
)

// ValidationError reports input that cannot be persisted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an unknown task identifier.
// Identifiers never come from users, so this indicates a caller bug.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports an identifier that is already taken
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("task %q already exists", e.ID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// AuthError represents an error from the authentication provider
type AuthError struct {
	Op      string // Operation: "signup", "signin", "resend", etc.
	Status  int    // HTTP status, 0 if the request never completed
	Message string // Human-readable message from the provider
	Err     error  // Underlying error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("auth %s failed with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("auth %s failed", e.Op)
}

// Display returns the text shown to the user on the auth screen
func (e *AuthError) Display() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error()
}

func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

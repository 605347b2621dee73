package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/riordanpawley/bennu/internal/domain"
)

// SessionFile persists the current session as JSON with owner-only permissions
type SessionFile struct {
	path string
}

// NewSessionFile returns a store backed by path
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Path returns the backing file path
func (f *SessionFile) Path() string {
	return f.path
}

// Load reads the stored session. A missing file yields nil, nil.
// A corrupt file yields nil and an error so the caller can log and discard it.
func (f *SessionFile) Load() (*domain.Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if s.AccessToken == "" || s.User == nil {
		return nil, nil
	}
	return &s, nil
}

// Save writes the session, creating the parent directory if needed
func (f *SessionFile) Save(s *domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Removing a missing file is not an error.
func (f *SessionFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

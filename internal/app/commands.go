package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/domain"
)

const actionSignOut = "signout"

// tickMsg drives toast expiry
type tickMsg time.Time

// sessionResolvedMsg carries the result of the startup session lookup
type sessionResolvedMsg struct {
	session *domain.Session
	err     error
}

// signedOutMsg is sent once the provider has dropped the session
type signedOutMsg struct {
	err error
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// resolveSessionCmd asks the provider for a stored session
func (m Model) resolveSessionCmd() tea.Cmd {
	provider, timeout := m.provider, m.timeout
	return func() tea.Msg {
		if provider == nil {
			return sessionResolvedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		session, err := provider.CurrentSession(ctx)
		return sessionResolvedMsg{session: session, err: err}
	}
}

// signOutCmd drops the session with the provider. The local state is
// cleared even when the remote call fails.
func (m Model) signOutCmd() tea.Cmd {
	provider, timeout := m.provider, m.timeout
	return func() tea.Msg {
		if provider == nil {
			return signedOutMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return signedOutMsg{err: provider.SignOut(ctx)}
	}
}

// errorMessage turns an error into toast text
func errorMessage(err error) string {
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Display()
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Please try again."
	case errors.Is(err, domain.ErrNotFound):
		return "That task no longer exists"
	default:
		return err.Error()
	}
}

// Package gate tracks whether the app shows the landing page, the auth form
// or the signed-in dashboard.
package gate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/riordanpawley/bennu/internal/domain"
)

// State is the gate's position
type State int

const (
	StateLoading State = iota
	StateLanding
	StateAuthenticating
	StateActive
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLanding:
		return "landing"
	case StateAuthenticating:
		return "authenticating"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is matched by every InvalidTransitionError
var ErrInvalidTransition = errors.New("invalid gate transition")

// InvalidTransitionError reports an event that is not allowed in the current state
type InvalidTransitionError struct {
	From  State
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("gate: cannot %s while %s", e.Event, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Gate is the session state machine. It owns the current session.
type Gate struct {
	state   State
	session *domain.Session
	logger  *slog.Logger
}

// New creates a gate in the loading state
func New(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{state: StateLoading, logger: logger}
}

// State returns the current state
func (g *Gate) State() State {
	return g.state
}

// Session returns the active session, nil unless the gate is active
func (g *Gate) Session() *domain.Session {
	return g.session
}

// User returns the signed-in user, nil unless the gate is active
func (g *Gate) User() *domain.User {
	if g.session == nil {
		return nil
	}
	return g.session.User
}

// Start re-enters loading from any state, dropping the session
func (g *Gate) Start() {
	g.session = nil
	g.transition(StateLoading, "start")
}

// Resolve finishes loading: active with a session that has a user, landing otherwise
func (g *Gate) Resolve(session *domain.Session) error {
	if g.state != StateLoading {
		return g.invalid("resolve")
	}
	if session != nil && session.User != nil {
		g.session = session
		g.transition(StateActive, "resolve")
		return nil
	}
	g.transition(StateLanding, "resolve")
	return nil
}

// GetStarted opens the auth form from the landing page
func (g *Gate) GetStarted() error {
	if g.state != StateLanding {
		return g.invalid("get started")
	}
	g.transition(StateAuthenticating, "get started")
	return nil
}

// Succeed completes authentication
func (g *Gate) Succeed(session *domain.Session) error {
	if g.state != StateAuthenticating {
		return g.invalid("succeed")
	}
	if session == nil || session.User == nil {
		return &domain.AuthError{Op: "signin", Message: "no session returned"}
	}
	g.session = session
	g.transition(StateActive, "succeed")
	return nil
}

// Back leaves the auth form for the landing page
func (g *Gate) Back() error {
	if g.state != StateAuthenticating {
		return g.invalid("go back")
	}
	g.transition(StateLanding, "back")
	return nil
}

// SignOut drops the session and returns to the landing page
func (g *Gate) SignOut() error {
	if g.state != StateActive {
		return g.invalid("sign out")
	}
	g.session = nil
	g.transition(StateLanding, "sign out")
	return nil
}

func (g *Gate) transition(to State, event string) {
	g.logger.Debug("gate transition", "from", g.state, "to", to, "event", event)
	g.state = to
}

func (g *Gate) invalid(event string) error {
	err := &InvalidTransitionError{From: g.state, Event: event}
	g.logger.Warn("rejected gate transition", "error", err)
	return err
}

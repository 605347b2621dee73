package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/domain"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a menu item is selected
type SelectionMsg struct {
	Key   string
	Value any
}

// TaskCreatedMsg is emitted after the create form stored a new task
type TaskCreatedMsg struct {
	Task domain.Task
}

func closeCmd() tea.Cmd {
	return func() tea.Msg { return CloseOverlayMsg{} }
}

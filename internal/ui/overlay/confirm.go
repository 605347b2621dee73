package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// ConfirmResult is the SelectionMsg value emitted by ConfirmDialog
type ConfirmResult struct {
	Action    string
	Confirmed bool
}

// ConfirmDialog is a Yes/No dialog. Action tags the result so the app can
// route it.
type ConfirmDialog struct {
	title    string
	message  string
	action   string
	styles   *styles.Styles
	selected bool // true = Yes
}

// NewConfirmDialog creates a dialog defaulting to No
func NewConfirmDialog(action, title, message string, s *styles.Styles) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		action:  action,
		styles:  s,
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, c.result(true)
	case "n", "N", "esc":
		return c, c.result(false)
	case "enter":
		return c, c.result(c.selected)
	case "left", "h":
		c.selected = true
	case "right", "l":
		c.selected = false
	case "tab":
		c.selected = !c.selected
	}
	return c, nil
}

func (c *ConfirmDialog) result(confirmed bool) tea.Cmd {
	res := ConfirmResult{Action: c.action, Confirmed: confirmed}
	return tea.Batch(
		func() tea.Msg { return SelectionMsg{Key: c.action, Value: res} },
		closeCmd(),
	)
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	s := c.styles
	var b strings.Builder

	if c.message != "" {
		b.WriteString(s.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := s.MenuItem, s.MenuItemActive
	if c.selected {
		yesStyle, noStyle = s.MenuItemActive, s.MenuItem
	}
	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n\n")
	b.WriteString(renderHints(s, hint{"←/→", "switch"}, hint{"enter", "confirm"}, hint{"esc", "cancel"}))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 50, strings.Count(c.message, "\n") + 7
}

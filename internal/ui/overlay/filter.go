package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// SelectionMsg keys emitted by FilterMenu
const (
	SelectionStatus       = "status"
	SelectionSearchPolicy = "searchPolicy"
)

// FilterMenu picks the completion filter and how search combines with it
type FilterMenu struct {
	status domain.StatusFilter
	policy domain.SearchPolicy
	styles *styles.Styles
}

// statusKeys maps menu keys to filters
var statusKeys = []struct {
	key    string
	filter domain.StatusFilter
}{
	{"a", domain.FilterAll},
	{"o", domain.FilterActive},
	{"c", domain.FilterCompleted},
}

// NewFilterMenu creates a filter menu showing the current query settings
func NewFilterMenu(q domain.Query, s *styles.Styles) *FilterMenu {
	return &FilterMenu{status: q.Status, policy: q.SearchPolicy, styles: s}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q":
		return m, closeCmd()

	case "p":
		if m.policy == domain.SearchOverrides {
			m.policy = domain.SearchCombines
		} else {
			m.policy = domain.SearchOverrides
		}
		policy := m.policy
		return m, func() tea.Msg {
			return SelectionMsg{Key: SelectionSearchPolicy, Value: policy}
		}

	case "tab":
		return m, m.choose(m.status.Cycle())
	}

	for _, sk := range statusKeys {
		if sk.key == key.String() {
			return m, m.choose(sk.filter)
		}
	}
	return m, nil
}

func (m *FilterMenu) choose(f domain.StatusFilter) tea.Cmd {
	m.status = f
	return func() tea.Msg {
		return SelectionMsg{Key: SelectionStatus, Value: f}
	}
}

// View renders the menu
func (m *FilterMenu) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.MenuHeader.Render("Status"))
	b.WriteString("\n")
	for _, sk := range statusKeys {
		style := s.MenuItem
		marker := "○"
		if sk.filter == m.status {
			style = s.MenuItemActive
			marker = "●"
		}
		b.WriteString("  " + s.MenuKey.Render("["+sk.key+"]") + " " + style.Render(marker+" "+sk.filter.String()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.MenuHeader.Render("Search"))
	b.WriteString("\n")
	label := "combines with status"
	if m.policy == domain.SearchOverrides {
		label = "overrides status"
	}
	b.WriteString("  " + s.MenuKey.Render("[p]") + " " + s.MenuItem.Render(label) + "\n")

	b.WriteString("\n")
	b.WriteString(renderHints(s, hint{"tab", "cycle status"}, hint{"esc", "close"}))
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	return 50, 12
}

package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// SelectionSort is the SelectionMsg key emitted by SortMenu
const SelectionSort = "sort"

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	SortKey     domain.SortKey
	Description string
}

// SortMenu picks the task list ordering
type SortMenu struct {
	current domain.SortKey
	cursor  int
	options []SortOption
	styles  *styles.Styles
}

// NewSortMenu creates a sort menu with current preselected
func NewSortMenu(current domain.SortKey, s *styles.Styles) *SortMenu {
	m := &SortMenu{
		current: current,
		styles:  s,
		options: []SortOption{
			{Key: "p", SortKey: domain.SortByPriority, Description: "urgent first"},
			{Key: "d", SortKey: domain.SortByDueDate, Description: "earliest first, undated last"},
			{Key: "c", SortKey: domain.SortByCategory, Description: "alphabetical"},
		},
	}
	for i, opt := range m.options {
		if opt.SortKey == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q":
		return m, closeCmd()
	case "j", "down":
		m.cursor = (m.cursor + 1) % len(m.options)
	case "k", "up":
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case "enter":
		return m, m.choose(m.options[m.cursor].SortKey)
	default:
		for _, opt := range m.options {
			if opt.Key == key.String() {
				return m, m.choose(opt.SortKey)
			}
		}
	}
	return m, nil
}

func (m *SortMenu) choose(k domain.SortKey) tea.Cmd {
	m.current = k
	return func() tea.Msg {
		return SelectionMsg{Key: SelectionSort, Value: k}
	}
}

// View renders the menu
func (m *SortMenu) View() string {
	s := m.styles
	var b strings.Builder

	for i, opt := range m.options {
		labelStyle := s.MenuItem
		if i == m.cursor {
			labelStyle = s.MenuItemActive
		}

		b.WriteString(s.MenuKey.Render("[" + opt.Key + "]"))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(opt.SortKey.Label()))
		b.WriteString(" ")
		b.WriteString(s.Muted.Render("(" + opt.Description + ")"))
		if opt.SortKey == m.current {
			b.WriteString(" ")
			b.WriteString(s.MenuItemActive.Render("●"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHints(s, hint{"enter", "select"}, hint{"esc", "close"}))
	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 56, len(m.options) + 5
}

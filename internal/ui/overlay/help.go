package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// Keybindings is the reference shown by HelpOverlay
var Keybindings = []KeyCategory{
	{
		Name: "Tasks",
		Bindings: []KeyBinding{
			{Key: "j/k", Description: "Move cursor"},
			{Key: "x/Space", Description: "Toggle done"},
			{Key: "n", Description: "New task"},
			{Key: "f", Description: "Focus on selected task"},
		},
	},
	{
		Name: "View",
		Bindings: []KeyBinding{
			{Key: "/", Description: "Search"},
			{Key: "s", Description: "Sort menu"},
			{Key: "F", Description: "Filter menu"},
			{Key: "c", Description: "Cycle status filter"},
			{Key: "Esc", Description: "Clear search"},
		},
	},
	{
		Name: "App",
		Bindings: []KeyBinding{
			{Key: "Tab", Description: "Next view"},
			{Key: "1/2/3", Description: "Tasks / Focus / Progress"},
			{Key: "a", Description: "Accessibility settings"},
			{Key: "S", Description: "Sign out"},
			{Key: "?", Description: "Help (this screen)"},
			{Key: "q", Description: "Quit"},
		},
	},
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	styles     *styles.Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(s *styles.Styles) *HelpOverlay {
	return &HelpOverlay{styles: s, viewHeight: 20}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "esc", "q", "?":
		return h, closeCmd()
	case "j", "down":
		if h.scroll < h.maxScroll {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	s := h.styles
	var content strings.Builder
	for i, cat := range Keybindings {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(s.SectionTitle.Render(cat.Name + ":"))
		content.WriteString("\n")
		for _, binding := range cat.Bindings {
			content.WriteString("  " + s.MenuKey.Render(padRight(binding.Key, 8)) + s.MenuItem.Render(binding.Description) + "\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		result += "\n\n" + renderHints(s, hint{"j/k", "scroll"}, hint{"g/G", "jump"})
	}
	return result
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 4
}

package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/bennu/internal/services/accessibility"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// SettingType represents the type of a setting
type SettingType int

const (
	// SettingToggle is a boolean on/off setting (Space/Enter to toggle)
	SettingToggle SettingType = iota
	// SettingChoice is a multiple-choice setting (Left/Right to cycle)
	SettingChoice
	// SettingSeparator is a visual separator (not selectable)
	SettingSeparator
)

// SettingItem is one row of the settings panel. Value reads the live value
// and Set writes it back, so the panel never holds stale copies.
type SettingItem struct {
	Key     string
	Label   string
	Type    SettingType
	Choices []string
	Value   func() string
	Set     func(string)
}

// SettingsOverlay is the accessibility settings panel
type SettingsOverlay struct {
	items  []SettingItem
	cursor int
	styles *styles.Styles
}

// NewSettingsOverlay creates a settings panel over arbitrary items
func NewSettingsOverlay(items []SettingItem, s *styles.Styles) *SettingsOverlay {
	m := &SettingsOverlay{items: items, styles: s}
	m.cursor = -1
	m.moveCursor(1)
	return m
}

// NewAccessibilitySettings builds the panel for the four view preferences.
// Every change goes through ctrl, which notifies its listener.
func NewAccessibilitySettings(ctrl *accessibility.Controller, s *styles.Styles) *SettingsOverlay {
	items := []SettingItem{
		{
			Key:     "f",
			Label:   "Font size",
			Type:    SettingChoice,
			Choices: names(accessibility.FontSizes),
			Value:   func() string { return string(ctrl.Configuration().FontSize) },
			Set:     func(v string) { ctrl.SetFontSize(accessibility.FontSize(v)) },
		},
		{
			Key:     "c",
			Label:   "Color scheme",
			Type:    SettingChoice,
			Choices: names(accessibility.ColorSchemes),
			Value:   func() string { return string(ctrl.Configuration().ColorScheme) },
			Set:     func(v string) { ctrl.SetColorScheme(accessibility.ColorScheme(v)) },
		},
		{
			Key:     "d",
			Label:   "Density",
			Type:    SettingChoice,
			Choices: names(accessibility.Densities),
			Value:   func() string { return string(ctrl.Configuration().Density) },
			Set:     func(v string) { ctrl.SetDensity(accessibility.Density(v)) },
		},
		{Label: "──────────", Type: SettingSeparator},
		{
			Key:   "m",
			Label: "Reduced motion",
			Type:  SettingToggle,
			Value: func() string { return onOff(ctrl.Configuration().ReducedMotion) },
			Set:   func(v string) { ctrl.SetReducedMotion(v == "on") },
		},
	}
	return NewSettingsOverlay(items, s)
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Init initializes the overlay
func (m *SettingsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SettingsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q":
		return m, closeCmd()
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "h", "left":
		m.change(-1)
	case "l", "right":
		m.change(1)
	case " ", "enter":
		m.change(1)
	default:
		for i, item := range m.items {
			if item.Type != SettingSeparator && item.Key == key.String() {
				m.cursor = i
				m.change(1)
				break
			}
		}
	}
	return m, nil
}

// Current returns the item under the cursor
func (m *SettingsOverlay) Current() (SettingItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return SettingItem{}, false
	}
	return m.items[m.cursor], true
}

// moveCursor steps to the next selectable item in direction delta, wrapping
func (m *SettingsOverlay) moveCursor(delta int) {
	n := len(m.items)
	for i := 1; i <= n; i++ {
		next := ((m.cursor+delta*i)%n + n) % n
		if m.items[next].Type != SettingSeparator {
			m.cursor = next
			return
		}
	}
}

// change cycles a choice or flips a toggle
func (m *SettingsOverlay) change(delta int) {
	item, ok := m.Current()
	if !ok || item.Set == nil {
		return
	}
	switch item.Type {
	case SettingToggle:
		if item.Value() == "on" {
			item.Set("off")
		} else {
			item.Set("on")
		}
	case SettingChoice:
		item.Set(cycle(item.Choices, item.Value(), delta))
	}
}

// View renders the settings panel
func (m *SettingsOverlay) View() string {
	s := m.styles
	var b strings.Builder

	for i, item := range m.items {
		if item.Type == SettingSeparator {
			b.WriteString(s.Separator.Render(item.Label))
			b.WriteString("\n")
			continue
		}

		style := s.MenuItem
		if i == m.cursor {
			style = s.MenuItemActive
		}

		value := item.Value()
		if item.Type == SettingChoice {
			value = "< " + value + " >"
		} else {
			value = "[" + value + "]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			s.MenuKey.Render("["+item.Key+"]"),
			style.Render(fmt.Sprintf("%-16s", item.Label)),
			style.Render(value),
		))
	}

	b.WriteString("\n")
	b.WriteString(renderHints(s,
		hint{"j/k", "navigate"},
		hint{"h/l", "change"},
		hint{"space", "toggle"},
		hint{"esc", "close"},
	))
	return b.String()
}

// Title returns the overlay title
func (m *SettingsOverlay) Title() string {
	return "Accessibility"
}

// Size returns the overlay dimensions
func (m *SettingsOverlay) Size() (width, height int) {
	return 60, len(m.items) + 6
}

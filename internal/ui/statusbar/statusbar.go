package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/types"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	tab    types.Tab
	info   string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, tab, width, and styles
func New(mode types.Mode, tab types.Tab, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		tab:    tab,
		width:  width,
		styles: styles,
	}
}

// WithInfo sets the right-hand summary (filter, sort, counts)
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if hints := GetHints(sb.mode, sb.tab); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	if sb.info != "" {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(sb.info))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

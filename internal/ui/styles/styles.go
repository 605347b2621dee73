package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/services/accessibility"
)

// Styles holds all the UI styles for one accessibility configuration
type Styles struct {
	Palette Palette
	Classes accessibility.Classes

	// Layout metrics from density and font size
	RowGap           int
	SectionGap       int
	ShowDescriptions bool
	Animate          bool

	// Chrome
	App       lipgloss.Style
	Header    lipgloss.Style
	Brand     lipgloss.Style
	User      lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Cards and rows
	Card          lipgloss.Style
	CardActive    lipgloss.Style
	TaskTitle     lipgloss.Style
	TaskTitleDone lipgloss.Style
	TaskMeta      lipgloss.Style
	Description   lipgloss.Style
	Tag           lipgloss.Style
	Category      lipgloss.Style
	Cursor        lipgloss.Style
	SectionTitle  lipgloss.Style
	Muted         lipgloss.Style

	// Badges
	PriorityBadge func(p domain.Priority) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	MenuHeader       lipgloss.Style
	Separator        lipgloss.Style
	Footer           lipgloss.Style
	Suggestion       lipgloss.Style

	// Messages
	Error   lipgloss.Style
	Success lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

type densityMetrics struct {
	cardVPad, cardHPad int
	rowGap, sectionGap int
}

var densities = map[accessibility.Density]densityMetrics{
	accessibility.DensityCompact:  {cardVPad: 0, cardHPad: 1, rowGap: 0, sectionGap: 0},
	accessibility.DensitySpacious: {cardVPad: 2, cardHPad: 3, rowGap: 1, sectionGap: 2},
}

var defaultDensity = densityMetrics{cardVPad: 1, cardHPad: 2, rowGap: 0, sectionGap: 1}

// Default returns styles for the default accessibility configuration
func Default() *Styles {
	return New(accessibility.DefaultConfiguration())
}

// New builds the styles for cfg
func New(cfg accessibility.Configuration) *Styles {
	p := PaletteFor(cfg.ColorScheme)
	d, ok := densities[cfg.Density]
	if !ok {
		d = defaultDensity
	}
	bold := cfg.FontSize != accessibility.FontSmall
	large := cfg.FontSize == accessibility.FontLarge

	s := &Styles{
		Palette:          p,
		Classes:          accessibility.Derive(cfg),
		RowGap:           d.rowGap,
		SectionGap:       d.sectionGap,
		ShowDescriptions: cfg.FontSize != accessibility.FontSmall,
		Animate:          !cfg.ReducedMotion,

		App: lipgloss.NewStyle().
			Foreground(p.Text),

		Header: lipgloss.NewStyle().
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			Padding(0, 1),

		Brand: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		User: lipgloss.NewStyle().
			Foreground(p.Subtext),

		Tab: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(p.OnAccent).
			Background(p.Primary).
			Bold(true).
			Padding(0, 2),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(d.cardVPad, d.cardHPad),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(d.cardVPad, d.cardHPad),

		TaskTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(bold),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(p.Muted).
			Strikethrough(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(p.Subtext),

		Description: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Italic(!large),

		Tag: lipgloss.NewStyle().
			Foreground(p.Mauve),

		Category: lipgloss.NewStyle().
			Foreground(p.Blue),

		Cursor: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			Underline(large),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		PriorityBadge: func(priority domain.Priority) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(p.OnAccent).
				Background(p.PriorityColor(priority)).
				Padding(0, 1).
				Bold(bold)
		},

		StatusBar: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Subtext).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.OnAccent).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Muted),

		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Subtext),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(d.cardVPad, d.cardHPad),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(p.Muted),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		MenuHeader: lipgloss.NewStyle().
			Foreground(p.Subtext).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(p.Border),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtext).
			MarginTop(1),

		Suggestion: lipgloss.NewStyle().
			Foreground(p.Mauve).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(p.Red),

		Success: lipgloss.NewStyle().
			Foreground(p.Green),

		ToastInfo:    toastStyle(p.Blue),
		ToastSuccess: toastStyle(p.Green),
		ToastWarning: toastStyle(p.Yellow),
		ToastError:   toastStyle(p.Red),
	}
	return s
}

func toastStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Foreground(c).
		Padding(0, 1)
}

// Gap returns n blank lines for joining rows
func Gap(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("\n", n)
}

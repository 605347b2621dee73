package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/bennu/internal/domain"
	"github.com/riordanpawley/bennu/internal/services/accessibility"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Crust    = lipgloss.Color("#181926")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// Palette is the set of colours a scheme provides
type Palette struct {
	Base     lipgloss.Color
	Card     lipgloss.Color
	Surface  lipgloss.Color
	Border   lipgloss.Color
	Muted    lipgloss.Color
	Subtext  lipgloss.Color
	Text     lipgloss.Color
	Primary  lipgloss.Color
	OnAccent lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Blue     lipgloss.Color
	Mauve    lipgloss.Color
}

// Macchiato is the default dark palette
var Macchiato = Palette{
	Base:     Base,
	Card:     Mantle,
	Surface:  Surface0,
	Border:   Surface1,
	Muted:    Overlay0,
	Subtext:  Subtext0,
	Text:     Text,
	Primary:  Blue,
	OnAccent: Base,
	Red:      Red,
	Peach:    Peach,
	Yellow:   Yellow,
	Green:    Green,
	Blue:     Blue,
	Mauve:    Mauve,
}

// HighContrast is black and white with saturated accents
var HighContrast = Palette{
	Base:     lipgloss.Color("#000000"),
	Card:     lipgloss.Color("#111827"),
	Surface:  lipgloss.Color("#1f2937"),
	Border:   lipgloss.Color("#ffffff"),
	Muted:    lipgloss.Color("#d1d5db"),
	Subtext:  lipgloss.Color("#f3f4f6"),
	Text:     lipgloss.Color("#ffffff"),
	Primary:  lipgloss.Color("#ffffff"),
	OnAccent: lipgloss.Color("#000000"),
	Red:      lipgloss.Color("#ff5555"),
	Peach:    lipgloss.Color("#ffb86c"),
	Yellow:   lipgloss.Color("#ffff00"),
	Green:    lipgloss.Color("#00ff00"),
	Blue:     lipgloss.Color("#00bfff"),
	Mauve:    lipgloss.Color("#ff79c6"),
}

// Warm is a light orange palette
var Warm = Palette{
	Base:     lipgloss.Color("#fff7ed"),
	Card:     lipgloss.Color("#ffedd5"),
	Surface:  lipgloss.Color("#fed7aa"),
	Border:   lipgloss.Color("#fdba74"),
	Muted:    lipgloss.Color("#a8a29e"),
	Subtext:  lipgloss.Color("#78716c"),
	Text:     lipgloss.Color("#431407"),
	Primary:  lipgloss.Color("#ea580c"),
	OnAccent: lipgloss.Color("#fff7ed"),
	Red:      lipgloss.Color("#dc2626"),
	Peach:    lipgloss.Color("#ea580c"),
	Yellow:   lipgloss.Color("#ca8a04"),
	Green:    lipgloss.Color("#16a34a"),
	Blue:     lipgloss.Color("#2563eb"),
	Mauve:    lipgloss.Color("#9333ea"),
}

// Cool is a light blue palette
var Cool = Palette{
	Base:     lipgloss.Color("#eff6ff"),
	Card:     lipgloss.Color("#dbeafe"),
	Surface:  lipgloss.Color("#bfdbfe"),
	Border:   lipgloss.Color("#93c5fd"),
	Muted:    lipgloss.Color("#94a3b8"),
	Subtext:  lipgloss.Color("#64748b"),
	Text:     lipgloss.Color("#0f172a"),
	Primary:  lipgloss.Color("#2563eb"),
	OnAccent: lipgloss.Color("#eff6ff"),
	Red:      lipgloss.Color("#dc2626"),
	Peach:    lipgloss.Color("#ea580c"),
	Yellow:   lipgloss.Color("#ca8a04"),
	Green:    lipgloss.Color("#16a34a"),
	Blue:     lipgloss.Color("#2563eb"),
	Mauve:    lipgloss.Color("#7c3aed"),
}

var palettes = map[accessibility.ColorScheme]Palette{
	accessibility.SchemeHighContrast: HighContrast,
	accessibility.SchemeWarm:         Warm,
	accessibility.SchemeCool:         Cool,
}

// PaletteFor returns the palette for a scheme, Macchiato for unknown schemes
func PaletteFor(scheme accessibility.ColorScheme) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return Macchiato
}

// PriorityColor maps a priority to its accent in p. Unknown priorities are muted.
func (p Palette) PriorityColor(priority domain.Priority) lipgloss.Color {
	switch priority {
	case domain.PriorityUrgent:
		return p.Red
	case domain.PriorityHigh:
		return p.Peach
	case domain.PriorityMedium:
		return p.Yellow
	case domain.PriorityLow:
		return p.Green
	default:
		return p.Muted
	}
}

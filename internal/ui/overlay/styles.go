package overlay

import (
	"fmt"
	"strings"

	"github.com/riordanpawley/bennu/internal/ui/styles"
)

// hint is one key/label pair in an overlay footer
type hint struct {
	key   string
	label string
}

// renderHints renders footer hints as "key label • key label"
func renderHints(s *styles.Styles, hints ...hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, s.MenuKey.Render(h.key)+" "+s.Footer.UnsetMarginTop().Render(h.label))
	}
	return s.Footer.Render(strings.Join(parts, " • "))
}

// renderChoices renders options inline, marking the current one with ●
func renderChoices[T comparable](s *styles.Styles, options []T, current T, label func(T) string) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		style := s.MenuItem
		indicator := " "
		if opt == current {
			style = s.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, label(opt))))
	}
	return strings.Join(parts, " ")
}

// cycle returns the option after (or before, when delta < 0) current
func cycle[T comparable](options []T, current T, delta int) T {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// fieldLabel renders a form label, highlighted when focused
func fieldLabel(s *styles.Styles, text string, focused bool) string {
	if focused {
		return s.MenuItemActive.Render(text)
	}
	return s.MenuHeader.Render(text)
}

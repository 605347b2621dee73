package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/bennu/internal/services/accessibility"
	"github.com/riordanpawley/bennu/internal/ui/styles"
)

func newTestSettings(t *testing.T) (*SettingsOverlay, *accessibility.Controller) {
	t.Helper()
	ctrl := accessibility.NewController(accessibility.DefaultConfiguration(), nil)
	return NewAccessibilitySettings(ctrl, styles.Default()), ctrl
}

func sendKey(m tea.Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestSettingsOverlayStartsOnFirstItem(t *testing.T) {
	m, _ := newTestSettings(t)
	item, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Font size", item.Label)
	assert.Equal(t, "Accessibility", m.Title())
}

func TestSettingsOverlayCyclesChoices(t *testing.T) {
	m, ctrl := newTestSettings(t)

	sendKey(m, "right")
	assert.Equal(t, accessibility.FontLarge, ctrl.Configuration().FontSize)

	sendKey(m, "right")
	assert.Equal(t, accessibility.FontSmall, ctrl.Configuration().FontSize)

	sendKey(m, "left")
	assert.Equal(t, accessibility.FontLarge, ctrl.Configuration().FontSize)
}

func TestSettingsOverlaySkipsSeparator(t *testing.T) {
	m, _ := newTestSettings(t)

	labels := []string{"Color scheme", "Density", "Reduced motion", "Font size"}
	for _, want := range labels {
		sendKey(m, "down")
		item, _ := m.Current()
		assert.Equal(t, want, item.Label)
	}

	sendKey(m, "up")
	item, _ := m.Current()
	assert.Equal(t, "Reduced motion", item.Label)
}

func TestSettingsOverlayShortcutKeys(t *testing.T) {
	m, ctrl := newTestSettings(t)

	sendKey(m, "c")
	assert.Equal(t, accessibility.SchemeHighContrast, ctrl.Configuration().ColorScheme)

	sendKey(m, "d")
	assert.Equal(t, accessibility.DensitySpacious, ctrl.Configuration().Density)

	sendKey(m, "m")
	assert.True(t, ctrl.Configuration().ReducedMotion)
	sendKey(m, "enter")
	assert.False(t, ctrl.Configuration().ReducedMotion)
}

func TestSettingsOverlayNotifiesListener(t *testing.T) {
	m, ctrl := newTestSettings(t)

	var got []accessibility.Configuration
	ctrl.OnChange(func(cfg accessibility.Configuration) { got = append(got, cfg) })

	sendKey(m, "c")
	require.Len(t, got, 1)
	assert.Equal(t, accessibility.SchemeHighContrast, got[0].ColorScheme)
}

func TestSettingsOverlayView(t *testing.T) {
	m, _ := newTestSettings(t)
	view := m.View()

	assert.Contains(t, view, "Font size")
	assert.Contains(t, view, "< medium >")
	assert.Contains(t, view, "< default >")
	assert.Contains(t, view, "< comfortable >")
	assert.Contains(t, view, "[off]")
}

func TestSettingsOverlayEscapeCloses(t *testing.T) {
	m, _ := newTestSettings(t)
	cmd := sendKey(m, "esc")
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}

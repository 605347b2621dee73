package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	assert.Equal(t, FontMedium, cfg.FontSize)
	assert.Equal(t, SchemeDefault, cfg.ColorScheme)
	assert.Equal(t, DensityComfortable, cfg.Density)
	assert.False(t, cfg.ReducedMotion)
}

func TestParseConfiguration(t *testing.T) {
	cfg := ParseConfiguration(" Large ", "HIGH-CONTRAST", "spacious", true)
	assert.Equal(t, Configuration{FontLarge, SchemeHighContrast, DensitySpacious, true}, cfg)

	cfg = ParseConfiguration("huge", "neon", "", false)
	assert.Equal(t, DefaultConfiguration(), cfg)
}

func TestController_SettersReplaceOneField(t *testing.T) {
	c := NewController(DefaultConfiguration(), nil)

	c.SetFontSize(FontLarge)
	assert.Equal(t, Configuration{FontLarge, SchemeDefault, DensityComfortable, false}, c.Configuration())

	c.SetColorScheme(SchemeWarm)
	assert.Equal(t, Configuration{FontLarge, SchemeWarm, DensityComfortable, false}, c.Configuration())

	c.SetDensity(DensityCompact)
	assert.Equal(t, Configuration{FontLarge, SchemeWarm, DensityCompact, false}, c.Configuration())

	c.SetReducedMotion(true)
	assert.Equal(t, Configuration{FontLarge, SchemeWarm, DensityCompact, true}, c.Configuration())
}

func TestController_NotifiesListener(t *testing.T) {
	c := NewController(DefaultConfiguration(), nil)

	var seen []Configuration
	c.OnChange(func(cfg Configuration) { seen = append(seen, cfg) })

	c.SetColorScheme(SchemeCool)
	c.SetReducedMotion(true)

	if assert.Len(t, seen, 2) {
		assert.Equal(t, SchemeCool, seen[0].ColorScheme)
		assert.False(t, seen[0].ReducedMotion)
		assert.True(t, seen[1].ReducedMotion)
	}
	assert.Equal(t, "[&_*]:transition-none", c.Classes().Motion)
}

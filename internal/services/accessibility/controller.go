// Package accessibility holds the user's view preferences and derives the
// presentational classes each preference maps to.
package accessibility

import (
	"log/slog"
	"strings"
	"sync"
)

// FontSize is the text size preference
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// FontSizes lists the choices in settings order
var FontSizes = []FontSize{FontSmall, FontMedium, FontLarge}

// ColorScheme is the palette preference
type ColorScheme string

const (
	SchemeDefault      ColorScheme = "default"
	SchemeHighContrast ColorScheme = "high-contrast"
	SchemeWarm         ColorScheme = "warm"
	SchemeCool         ColorScheme = "cool"
)

// ColorSchemes lists the choices in settings order
var ColorSchemes = []ColorScheme{SchemeDefault, SchemeHighContrast, SchemeWarm, SchemeCool}

// Density is the spacing preference
type Density string

const (
	DensityCompact     Density = "compact"
	DensityComfortable Density = "comfortable"
	DensitySpacious    Density = "spacious"
)

// Densities lists the choices in settings order
var Densities = []Density{DensityCompact, DensityComfortable, DensitySpacious}

// Configuration is the full set of view preferences
type Configuration struct {
	FontSize      FontSize
	ColorScheme   ColorScheme
	Density       Density
	ReducedMotion bool
}

// DefaultConfiguration returns medium text, the default palette and comfortable spacing
func DefaultConfiguration() Configuration {
	return Configuration{
		FontSize:    FontMedium,
		ColorScheme: SchemeDefault,
		Density:     DensityComfortable,
	}
}

// ParseConfiguration builds a configuration from loose strings.
// Unknown values keep their defaults.
func ParseConfiguration(fontSize, colorScheme, density string, reducedMotion bool) Configuration {
	cfg := DefaultConfiguration()
	if v := FontSize(normalize(fontSize)); contains(FontSizes, v) {
		cfg.FontSize = v
	}
	if v := ColorScheme(normalize(colorScheme)); contains(ColorSchemes, v) {
		cfg.ColorScheme = v
	}
	if v := Density(normalize(density)); contains(Densities, v) {
		cfg.Density = v
	}
	cfg.ReducedMotion = reducedMotion
	return cfg
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Listener is notified with the configuration after every change
type Listener func(Configuration)

// Controller owns the live configuration
type Controller struct {
	mu       sync.RWMutex
	cfg      Configuration
	listener Listener
	logger   *slog.Logger
}

// NewController creates a controller starting from initial
func NewController(initial Configuration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{cfg: initial, logger: logger}
}

// OnChange registers the change listener, replacing any previous one
func (c *Controller) OnChange(l Listener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// Configuration returns the current configuration
func (c *Controller) Configuration() Configuration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Classes derives the presentational classes for the current configuration
func (c *Controller) Classes() Classes {
	return Derive(c.Configuration())
}

// SetFontSize replaces the font size
func (c *Controller) SetFontSize(v FontSize) {
	c.update("fontSize", func(cfg *Configuration) { cfg.FontSize = v })
}

// SetColorScheme replaces the colour scheme
func (c *Controller) SetColorScheme(v ColorScheme) {
	c.update("colorScheme", func(cfg *Configuration) { cfg.ColorScheme = v })
}

// SetDensity replaces the density
func (c *Controller) SetDensity(v Density) {
	c.update("density", func(cfg *Configuration) { cfg.Density = v })
}

// SetReducedMotion replaces the reduced-motion flag
func (c *Controller) SetReducedMotion(v bool) {
	c.update("reducedMotion", func(cfg *Configuration) { cfg.ReducedMotion = v })
}

func (c *Controller) update(field string, apply func(*Configuration)) {
	c.mu.Lock()
	apply(&c.cfg)
	cfg := c.cfg
	listener := c.listener
	c.mu.Unlock()

	c.logger.Debug("accessibility changed", "field", field, "config", cfg)
	if listener != nil {
		listener(cfg)
	}
}

package accessibility

// Classes is the set of presentational class tokens for a configuration
type Classes struct {
	Font    string
	Color   string
	Density string
	Motion  string
}

// String joins the non-empty class groups with spaces
func (c Classes) String() string {
	out := ""
	for _, part := range []string{c.Font, c.Color, c.Density, c.Motion} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += part
	}
	return out
}

var fontClasses = map[FontSize]string{
	FontSmall: "text-sm",
	FontLarge: "text-lg",
}

const defaultFontClass = "text-base"

var colorClasses = map[ColorScheme]string{
	SchemeHighContrast: "bg-black text-white [&_.card]:bg-gray-900 [&_.card]:border-white [&_.button]:bg-white [&_.button]:text-black",
	SchemeWarm:         "bg-orange-50 [&_.card]:bg-orange-100 [&_.primary]:bg-orange-600",
	SchemeCool:         "bg-blue-50 [&_.card]:bg-blue-100 [&_.primary]:bg-blue-600",
}

const defaultColorClass = "bg-background"

var densityClasses = map[Density]string{
	DensityCompact:  "space-y-2 [&_.card]:p-3",
	DensitySpacious: "space-y-8 [&_.card]:p-8",
}

const defaultDensityClass = "space-y-4 [&_.card]:p-6"

const reducedMotionClass = "[&_*]:transition-none"

// Derive maps a configuration to class tokens. Every table falls back to its
// default entry, so unknown values never fail.
func Derive(cfg Configuration) Classes {
	classes := Classes{
		Font:    lookup(fontClasses, cfg.FontSize, defaultFontClass),
		Color:   lookup(colorClasses, cfg.ColorScheme, defaultColorClass),
		Density: lookup(densityClasses, cfg.Density, defaultDensityClass),
	}
	if cfg.ReducedMotion {
		classes.Motion = reducedMotionClass
	}
	return classes
}

func lookup[K comparable](table map[K]string, key K, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

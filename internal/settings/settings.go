// Package settings holds the cosmetic preferences carried in the
// persisted bundle. They never influence domain logic; the TUI maps
// them onto its theme.
package settings

// AccentColor selects the theme accent palette.
type AccentColor string

const (
	Indigo AccentColor = "indigo"
	Teal   AccentColor = "teal"
	Rose   AccentColor = "rose"
)

// AllAccentColors returns the accent colors in display order.
func AllAccentColors() []AccentColor {
	return []AccentColor{Indigo, Teal, Rose}
}

// BorderRadius selects the card border preset. The names come from the
// exported envelope format and are kept verbatim for compatibility.
type BorderRadius string

const (
	RadiusLG  BorderRadius = "lg"
	Radius2XL BorderRadius = "2xl"
	Radius3XL BorderRadius = "3xl"
)

// AllBorderRadii returns the border presets in display order.
func AllBorderRadii() []BorderRadius {
	return []BorderRadius{RadiusLG, Radius2XL, Radius3XL}
}

// Settings is the persisted cosmetic preference pair.
type Settings struct {
	BorderRadius BorderRadius `json:"borderRadius"`
	AccentColor  AccentColor  `json:"accentColor"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		BorderRadius: Radius2XL,
		AccentColor:  Indigo,
	}
}

// Normalize replaces unknown enum values with their defaults, so an
// imported envelope with unrecognized settings still applies cleanly.
func (s Settings) Normalize() Settings {
	switch s.AccentColor {
	case Indigo, Teal, Rose:
	default:
		s.AccentColor = Indigo
	}
	switch s.BorderRadius {
	case RadiusLG, Radius2XL, Radius3XL:
	default:
		s.BorderRadius = Radius2XL
	}
	return s
}

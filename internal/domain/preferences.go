package domain

import "errors"

// Preference validation errors
var (
	// ErrInvalidTheme is returned when a theme is not one of the
	// recognized values.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidFontFamily is returned when a font family is not one of
	// the recognized values.
	ErrInvalidFontFamily = errors.New("invalid font family")

	// ErrInvalidDailyGoal is returned when a daily goal is not a
	// positive integer.
	ErrInvalidDailyGoal = errors.New("daily goal must be positive")
)

// Theme selects the presentation layer's color scheme. The engine only
// stores and round-trips it.
type Theme string

// Recognized themes.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Validate checks that the theme is a recognized value.
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	default:
		return ErrInvalidTheme
	}
}

// FontFamily selects the presentation layer's typeface class.
type FontFamily string

// Recognized font families.
const (
	FontSerif FontFamily = "serif"
	FontSans  FontFamily = "sans"
	FontMono  FontFamily = "mono"
)

// Validate checks that the font family is a recognized value.
func (f FontFamily) Validate() error {
	switch f {
	case FontSerif, FontSans, FontMono:
		return nil
	default:
		return ErrInvalidFontFamily
	}
}

// Preferences holds display settings the engine persists on behalf of
// the presentation layer.
type Preferences struct {
	Theme             Theme      `json:"theme"`
	FontFamily        FontFamily `json:"font_family"`
	AnimationsEnabled bool       `json:"animations_enabled"`
}

// DefaultPreferences returns the preferences assigned to a fresh state.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:             ThemeSystem,
		FontFamily:        FontSans,
		AnimationsEnabled: true,
	}
}

// Validate checks that all preference fields hold recognized values.
func (p Preferences) Validate() error {
	if err := p.Theme.Validate(); err != nil {
		return err
	}
	return p.FontFamily.Validate()
}

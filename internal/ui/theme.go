package ui

import "github.com/charmbracelet/lipgloss"

// ThemeName selects a named color theme.
type ThemeName int

const (
	// ThemeClassic is the default theme.
	ThemeClassic ThemeName = iota
	// ThemeModern uses a cooler, higher-contrast palette.
	ThemeModern
	// ThemeMinimalist uses ANSI color 7 for every piece and text color;
	// White and Black pieces are told apart only by letter case.
	ThemeMinimalist
)

// Theme name string constants for config (de)serialization.
const (
	ThemeNameClassic    = "classic"
	ThemeNameModern     = "modern"
	ThemeNameMinimalist = "minimalist"
)

// String returns the theme's config-file name.
func (t ThemeName) String() string {
	switch t {
	case ThemeModern:
		return ThemeNameModern
	case ThemeMinimalist:
		return ThemeNameMinimalist
	default:
		return ThemeNameClassic
	}
}

// ParseThemeName converts a string to a ThemeName, defaulting to
// ThemeClassic for anything unrecognized.
func ParseThemeName(s string) ThemeName {
	switch s {
	case ThemeNameModern:
		return ThemeModern
	case ThemeNameMinimalist:
		return ThemeMinimalist
	default:
		return ThemeClassic
	}
}

// Theme defines a color palette. BoardRenderer colors piece symbols with
// WhitePiece and BlackPiece; the text colors are carried with each theme
// but nothing in plychess renders with them. Themes should stay WCAG AA
// compliant (4.5:1 contrast) against a default terminal background.
type Theme struct {
	Name string

	WhitePiece lipgloss.Color
	BlackPiece lipgloss.Color

	TitleText  lipgloss.Color
	HelpText   lipgloss.Color
	ErrorText  lipgloss.Color
	StatusText lipgloss.Color
}

var themes = map[ThemeName]Theme{
	ThemeClassic: {
		Name:       ThemeNameClassic,
		WhitePiece: lipgloss.Color("15"),
		BlackPiece: lipgloss.Color("8"),
		TitleText:  lipgloss.Color("#FAFAFA"),
		HelpText:   lipgloss.Color("#626262"),
		ErrorText:  lipgloss.Color("#FF5555"),
		StatusText: lipgloss.Color("#50FA7B"),
	},
	ThemeModern: {
		Name:       ThemeNameModern,
		WhitePiece: lipgloss.Color("#F8F8F2"),
		BlackPiece: lipgloss.Color("#6272A4"),
		TitleText:  lipgloss.Color("#BD93F9"),
		HelpText:   lipgloss.Color("#6272A4"),
		ErrorText:  lipgloss.Color("#FF5555"),
		StatusText: lipgloss.Color("#8BE9FD"),
	},
	ThemeMinimalist: {
		Name:       ThemeNameMinimalist,
		WhitePiece: lipgloss.Color("7"),
		BlackPiece: lipgloss.Color("7"),
		TitleText:  lipgloss.Color("7"),
		HelpText:   lipgloss.Color("7"),
		ErrorText:  lipgloss.Color("7"),
		StatusText: lipgloss.Color("7"),
	},
}

// GetTheme returns the theme for name, falling back to ThemeClassic for
// anything not in the table.
func GetTheme(name ThemeName) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[ThemeClassic]
}

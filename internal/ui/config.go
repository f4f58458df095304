package ui

// Config holds display configuration options that control how the board
// is rendered.
type Config struct {
	// ShowCoords determines whether to show file/rank labels (a-h, 1-8).
	ShowCoords bool
	// UseColors determines whether to color piece symbols. BoardRenderer
	// still checks the terminal's own color support (via termenv) before
	// honoring this.
	UseColors bool
	// Theme selects which Theme GetTheme resolves board colors from.
	Theme ThemeName
}

// DefaultConfig returns a Config with default values for maximum
// compatibility and user-friendliness.
func DefaultConfig() Config {
	return Config{
		ShowCoords: true,
		UseColors:  true,
		Theme:      ThemeClassic,
	}
}

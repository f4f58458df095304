// Package config provides plychess's user preference storage.
//
// Configuration is stored in ~/.plychess/config.toml. This is preference
// state only (display and engine defaults); no position, move history, or
// any other game state is ever written to disk.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultTheme is the default theme name. Valid values are "classic",
// "modern", and "minimalist", matching the ui.ThemeNameX constants;
// ui.ParseThemeName normalizes anything else to DefaultTheme.
const DefaultTheme = "classic"

// Config holds the display and engine preferences that control how the
// board is rendered and how deeply the search driver looks ahead.
type Config struct {
	// ShowCoords determines whether to show file/rank labels (a-h, 1-8).
	ShowCoords bool
	// UseColors determines whether to color the board with lipgloss.
	UseColors bool
	// Theme is the name of the color theme to use.
	Theme string
	// SearchDepth is the default ply depth passed to search.AlphaBeta.
	SearchDepth int
	// HostTimeBudget is the default soft time budget given to a
	// search.Host; zero means no budget beyond root-level cancellation.
	HostTimeBudget time.Duration
}

// DefaultConfig returns a Config with default values for maximum
// compatibility and user-friendliness.
func DefaultConfig() Config {
	return Config{
		ShowCoords:     true,
		UseColors:      true,
		Theme:          DefaultTheme,
		SearchDepth:    5,
		HostTimeBudget: 0,
	}
}

// configFile is the TOML on-disk representation of Config.
type configFile struct {
	Display displaySection `toml:"display"`
	Engine  engineSection  `toml:"engine"`
}

type displaySection struct {
	ShowCoordinates bool   `toml:"show_coordinates"`
	UseColors       bool   `toml:"use_colors"`
	Theme           string `toml:"theme"`
}

type engineSection struct {
	SearchDepth    int `toml:"search_depth"`
	TimeBudgetMs   int `toml:"time_budget_ms"`
}

func defaultConfigFile() configFile {
	d := DefaultConfig()
	return configFile{
		Display: displaySection{
			ShowCoordinates: d.ShowCoords,
			UseColors:       d.UseColors,
			Theme:           d.Theme,
		},
		Engine: engineSection{
			SearchDepth:  d.SearchDepth,
			TimeBudgetMs: int(d.HostTimeBudget / time.Millisecond),
		},
	}
}

func configFileToConfig(cf configFile) Config {
	theme := cf.Display.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	depth := cf.Engine.SearchDepth
	if depth <= 0 {
		depth = DefaultConfig().SearchDepth
	}
	return Config{
		ShowCoords:     cf.Display.ShowCoordinates,
		UseColors:      cf.Display.UseColors,
		Theme:          theme,
		SearchDepth:    depth,
		HostTimeBudget: time.Duration(cf.Engine.TimeBudgetMs) * time.Millisecond,
	}
}

func configToConfigFile(c Config) configFile {
	theme := c.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	return configFile{
		Display: displaySection{
			ShowCoordinates: c.ShowCoords,
			UseColors:       c.UseColors,
			Theme:           theme,
		},
		Engine: engineSection{
			SearchDepth:  c.SearchDepth,
			TimeBudgetMs: int(c.HostTimeBudget / time.Millisecond),
		},
	}
}

// LoadConfig reads ~/.plychess/config.toml. If the file doesn't exist or
// cannot be parsed, it returns DefaultConfig — LoadConfig never errors.
func LoadConfig() Config {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig()
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig()
	}

	var cf configFile
	if _, err := toml.DecodeFile(configPath, &cf); err != nil {
		return DefaultConfig()
	}

	return configFileToConfig(cf)
}

// SaveConfig writes config to ~/.plychess/config.toml, creating the
// directory if needed.
func SaveConfig(cfg Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(configToConfigFile(cfg)); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

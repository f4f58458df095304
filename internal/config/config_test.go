package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_WithMissingFile(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}

	backupPath := configPath + ".test-backup"
	if _, err := os.Stat(configPath); err == nil {
		if err := os.Rename(configPath, backupPath); err != nil {
			t.Fatalf("failed to back up config file: %v", err)
		}
		defer os.Rename(backupPath, configPath)
	}

	got := LoadConfig()
	want := DefaultConfig()
	if got != want {
		t.Errorf("LoadConfig() = %+v, want default %+v", got, want)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	custom := Config{
		ShowCoords:     false,
		UseColors:      false,
		Theme:          "modern",
		SearchDepth:    7,
		HostTimeBudget: 3 * time.Second,
	}

	if err := SaveConfig(custom); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got := LoadConfig()
	if got != custom {
		t.Errorf("LoadConfig() after SaveConfig = %+v, want %+v", got, custom)
	}
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}

	if err := SaveConfig(DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("SaveConfig did not create the config directory")
	}
}

func TestConfigFileToConfig_EmptyThemeDefaults(t *testing.T) {
	cf := configFile{
		Display: displaySection{ShowCoordinates: true, UseColors: true, Theme: ""},
		Engine:  engineSection{SearchDepth: 0},
	}

	got := configFileToConfig(cf)

	if got.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want default %q", got.Theme, DefaultTheme)
	}
	if got.SearchDepth != DefaultConfig().SearchDepth {
		t.Errorf("SearchDepth = %d, want default %d", got.SearchDepth, DefaultConfig().SearchDepth)
	}
}

func TestConfigToConfigFile_RoundTrip(t *testing.T) {
	cfg := Config{
		ShowCoords:     false,
		UseColors:      true,
		Theme:          "minimalist",
		SearchDepth:    3,
		HostTimeBudget: 500 * time.Millisecond,
	}

	cf := configToConfigFile(cfg)
	back := configFileToConfig(cf)

	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

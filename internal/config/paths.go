package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "flightwatch"

func ConfigDir() string {
	if v := os.Getenv("FLIGHTWATCH_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func DataDir() string {
	if v := os.Getenv("FLIGHTWATCH_DATA_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.DataHome, appName)
}

// RawDataDir is where raw API payload dumps are written.
func RawDataDir() string { return filepath.Join(DataDir(), "raw") }

func ConfigFile() string { return filepath.Join(ConfigDir(), "config.toml") }

// Package config provides the configuration and data directories for diario.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the diario configuration directory.
//
// Resolution:
//   - $DIARIO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/diario if set (respects XDG on any platform)
//   - %AppData%/diario on Windows
//   - ~/.config/diario on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("DIARIO_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diario")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "diario")
		}
	}

	// macOS and Linux: ~/.config/diario
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "diario")
}

// DataDir returns the diario data directory, where the journal document
// lives unless a file path is given explicitly.
//
// Resolution:
//   - $DIARIO_DATA_HOME if set (explicit override)
//   - $XDG_DATA_HOME/diario if set (respects XDG on any platform)
//   - %LocalAppData%/diario on Windows
//   - ~/.local/share/diario on macOS and Linux
func DataDir() string {
	// Explicit override
	if dir := os.Getenv("DIARIO_DATA_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "diario")
	}

	// Windows: use LocalAppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "diario")
		}
	}

	// macOS and Linux: ~/.local/share/diario
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "diario")
}

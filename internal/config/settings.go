package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file inside Dir().
const SettingsFile = "settings.yaml"

// Settings holds user preferences read from the settings file.
// Every field is optional; zero values fall back to built-in defaults.
type Settings struct {
	// DefaultColor is the background color given to newly created entries.
	DefaultColor string `yaml:"default_color,omitempty"`
	// Editor overrides $DIARIO_EDITOR / $EDITOR for the edit command.
	Editor string `yaml:"editor,omitempty"`
	// ExportDir is where exports land when no --out path is given.
	// Empty means the current working directory.
	ExportDir string `yaml:"export_dir,omitempty"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{DefaultColor: "#fffef5"}
}

// SettingsPath returns the full path of the settings file.
func SettingsPath() string {
	return filepath.Join(Dir(), SettingsFile)
}

// LoadSettings reads the settings file from the configuration directory.
// A missing file yields the defaults; a malformed file is an error.
func LoadSettings() (Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if settings.DefaultColor == "" {
		settings.DefaultColor = DefaultSettings().DefaultColor
	}
	return settings, nil
}

// Save writes the settings to the given path, creating the directory
// if needed.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// ResolveEditor returns the editor command to launch, in priority order:
// the settings file, $DIARIO_EDITOR, $EDITOR, then vi.
func (s Settings) ResolveEditor() string {
	if s.Editor != "" {
		return s.Editor
	}
	if editor := os.Getenv("DIARIO_EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the user preferences persisted between runs.
type Settings struct {
	Theme      string
	Mode       string
	Looping    bool
	Animations bool
	NamedOnly  bool
}

// yamlSettings mirrors Settings on disk. Pointer fields distinguish absent
// keys from zero values so partial files keep their defaults.
type yamlSettings struct {
	Theme      *string `yaml:"theme"`
	Mode       *string `yaml:"mode"`
	Looping    *bool   `yaml:"looping"`
	Animations *bool   `yaml:"animations"`
	NamedOnly  *bool   `yaml:"named_only"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme:      "default",
		Mode:       "Focus",
		Looping:    false,
		Animations: true,
		NamedOnly:  false,
	}
}

// SettingsPath resolves the settings file under the user config directory.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, AppName, SettingsFileName), nil
}

// LoadSettings reads settings from path. A missing file yields defaults;
// keys absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings file: %w", err)
	}

	var raw yamlSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return s, fmt.Errorf("parse settings file: %w", err)
	}
	applyYamlSettings(&s, raw)
	return s, nil
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	raw := yamlSettings{
		Theme:      &s.Theme,
		Mode:       &s.Mode,
		Looping:    &s.Looping,
		Animations: &s.Animations,
		NamedOnly:  &s.NamedOnly,
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(s *Settings, raw yamlSettings) {
	if raw.Theme != nil && *raw.Theme != "" {
		s.Theme = *raw.Theme
	}
	if raw.Mode != nil && *raw.Mode != "" {
		s.Mode = *raw.Mode
	}
	if raw.Looping != nil {
		s.Looping = *raw.Looping
	}
	if raw.Animations != nil {
		s.Animations = *raw.Animations
	}
	if raw.NamedOnly != nil {
		s.NamedOnly = *raw.NamedOnly
	}
}

// Package settings persists UI preferences for the demo board under the
// state directory. Preferences are program-written state, not user-edited
// configuration, so they live next to the journal rather than beside
// config.toml.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/tui-relay/internal/config"
)

const (
	// ThemeDark is the default color theme.
	ThemeDark = "dark"
	// ThemeLight inverts the palette for light terminals.
	ThemeLight = "light"
)

// Settings holds the persisted UI preferences.
type Settings struct {
	// ShowDone controls whether completed tasks stay visible in the list.
	ShowDone bool `json:"showDone"`
	// ShowJournal toggles the invocation journal panel.
	ShowJournal bool `json:"showJournal"`
	// JournalFormat names the formatter preset used by the journal panel.
	JournalFormat string `json:"journalFormat"`
	// Theme selects the color theme, ThemeDark or ThemeLight.
	Theme string `json:"theme"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		ShowDone:      true,
		ShowJournal:   false,
		JournalFormat: "compact",
		Theme:         ThemeDark,
	}
}

func (s Settings) validate() error {
	switch s.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q (allowed: %s, %s)", s.Theme, ThemeDark, ThemeLight)
	}
	if s.JournalFormat == "" {
		return fmt.Errorf("journal format must not be empty")
	}
	return nil
}

// Path returns the settings file location: {state_dir}/settings.json.
func Path() string {
	stateDir := config.Get("state_dir", "")
	if stateDir == "" {
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			stateDir = filepath.Join(xdg, "tui-relay")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				home = "."
			}
			stateDir = filepath.Join(home, ".local", "state", "tui-relay")
		}
	}
	return filepath.Join(stateDir, "settings.json")
}

// Load reads the settings file, returning defaults when it does not exist.
func Load() (Settings, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings file: %w", err)
	}
	return s, nil
}

// Save validates and writes the settings file, creating the state
// directory when needed.
func Save(s Settings) error {
	if err := s.validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, config.FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

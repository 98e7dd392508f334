// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tui-relay/internal/settings"
)

// ProgramRunner runs a bubbletea program. The abstraction lets command
// tests swap the real terminal program for a recorder.
type ProgramRunner interface {
	Run(model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram with the standard options.
type DefaultProgramRunner struct{}

func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts the program in the alternate screen with mouse support.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// SettingsLoader loads persisted UI preferences.
type SettingsLoader interface {
	Load() (settings.Settings, error)
}

// DefaultSettingsLoader reads from the settings file.
type DefaultSettingsLoader struct{}

func NewDefaultSettingsLoader() *DefaultSettingsLoader {
	return &DefaultSettingsLoader{}
}

func (l *DefaultSettingsLoader) Load() (settings.Settings, error) {
	return settings.Load()
}

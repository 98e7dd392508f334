package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/tui-relay/internal/errors"
	"github.com/cristianoliveira/tui-relay/internal/settings"
)

// styles holds the lipgloss styles for one theme.
type styles struct {
	title       lipgloss.Style
	row         lipgloss.Style
	rowSelected lipgloss.Style
	rowDone     lipgloss.Style
	statusError lipgloss.Style
	statusWarn  lipgloss.Style
	statusInfo  lipgloss.Style
	statusOK    lipgloss.Style
	buttonOn    lipgloss.Style
	buttonOff   lipgloss.Style
	panel       lipgloss.Style
	panelTitle  lipgloss.Style
	inputFrame  lipgloss.Style
	hint        lipgloss.Style
}

func newStyles(theme string) styles {
	accent := lipgloss.Color("33")
	muted := lipgloss.Color("241")
	selectedFg := lipgloss.Color("231")
	if theme == settings.ThemeLight {
		accent = lipgloss.Color("26")
		muted = lipgloss.Color("245")
		selectedFg = lipgloss.Color("255")
	}

	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		row:   lipgloss.NewStyle(),
		rowSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(selectedFg).
			Bold(true),
		rowDone:     lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		statusError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		statusWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		statusInfo:  lipgloss.NewStyle().Foreground(accent),
		statusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		buttonOn: lipgloss.NewStyle().
			Padding(0, 1).
			Background(accent).
			Foreground(selectedFg),
		buttonOff: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(muted),
		inputFrame: lipgloss.NewStyle().Foreground(accent),
		hint:       lipgloss.NewStyle().Foreground(muted),
	}
}

func (s styles) status(t errors.MessageType) lipgloss.Style {
	switch t {
	case errors.MessageTypeError:
		return s.statusError
	case errors.MessageTypeWarning:
		return s.statusWarn
	case errors.MessageTypeSuccess:
		return s.statusOK
	default:
		return s.statusInfo
	}
}

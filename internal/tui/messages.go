package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

// clearStatusMsg clears the status line after its display window.
type clearStatusMsg struct{}

// hooksDoneMsg reports the outcome of running post-invoke hooks for one
// firing.
type hooksDoneMsg struct {
	trigger string
	err     error
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// runHooksCmd runs hooks off the update loop so slow scripts never block
// rendering.
func runHooksCmd(run func(triggers.Firing) error, firing triggers.Firing) tea.Cmd {
	return func() tea.Msg {
		return hooksDoneMsg{trigger: firing.Trigger, err: run(firing)}
	}
}

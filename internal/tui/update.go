package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/formatter"
	"github.com/cristianoliveira/tui-relay/internal/journal"
	"github.com/cristianoliveira/tui-relay/internal/payload"
	"github.com/cristianoliveira/tui-relay/internal/settings"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

// Update is part of tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case clearStatusMsg:
		m.statusMessage = ""
		m.hasStatusMessage = false
		return m, nil
	case hooksDoneMsg:
		if msg.err != nil {
			m.errorHandler.Error(fmt.Sprintf("hooks for %s: %v", msg.trigger, msg.err))
			return m, clearStatusAfter(statusClearDuration)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode {
		return m.handleInputModeKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "j", "down":
		m.moveSelection(+1)
		return m, nil
	case "k", "up":
		m.moveSelection(-1)
		return m, nil
	case "a":
		m.inputMode = true
		m.input.Reset()
		return m, m.input.Focus()
	case "J":
		m.prefs.ShowJournal = !m.prefs.ShowJournal
		return m, nil
	case "d":
		m.toggleShowDone()
		return m, nil
	case "?":
		m.helpView.ShowAll = !m.helpView.ShowAll
		return m, nil
	}

	return m, m.dispatchKey(msg, m.selectionContext())
}

// handleInputModeKey routes keys while the title input is open. Only the
// submit chord reaches the keymap; every other key edits or cancels the
// input, so plain letters never fire bindings mid-typing.
func (m *Model) handleInputModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveInputMode()
		return m, nil
	case "enter":
		ctx := payload.MergeRecords(m.selectionContext(), m.inputContext())
		cmd := m.dispatchKey(msg, ctx)
		m.leaveInputMode()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInputMode() {
	m.inputMode = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.helpView.Width = msg.Width
	m.input.Width = msg.Width - 4
	m.journalPanel.Width = msg.Width - 2
	m.journalPanel.Height = journalPanelHeight
	m.refreshJournalPanel()
	return m, nil
}

// quit persists UI preferences and detaches every bridge before leaving.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.prefs.ShowDone = m.showDone
	if err := settings.Save(m.prefs); err != nil {
		m.errorHandler.Warning(fmt.Sprintf("failed to save settings: %v", err))
	}
	if !m.detached {
		m.keymap.Detach()
		m.detached = true
	}
	return m, tea.Quit
}

// moveSelection moves the cursor by dir, skipping done tasks while they
// are hidden.
func (m *Model) moveSelection(dir int) {
	if m.store.Len() == 0 {
		return
	}
	move := m.store.SelectNext
	if dir < 0 {
		move = m.store.SelectPrev
	}

	start := m.store.CursorIndex()
	move()
	if !m.showDone {
		for {
			task, ok := m.store.Selected()
			if !ok || !task.Done {
				break
			}
			before := m.store.CursorIndex()
			move()
			if m.store.CursorIndex() == before {
				// Hit the edge on a hidden task; fall back to where we were.
				m.snapToVisible(start)
				break
			}
		}
	}

	if m.store.CursorIndex() != start {
		// Guards may depend on which task is selected.
		m.registry.InvalidateAll()
	}
}

// toggleShowDone flips done-task visibility and keeps the selection on a
// visible task.
func (m *Model) toggleShowDone() {
	m.showDone = !m.showDone
	if !m.showDone {
		if task, ok := m.store.Selected(); ok && task.Done {
			m.snapToVisible(m.store.CursorIndex())
		}
	}
	m.registry.InvalidateAll()
}

// snapToVisible parks the cursor on the nearest open task, searching
// backwards from idx first, then forwards.
func (m *Model) snapToVisible(idx int) {
	tasksList := m.store.Tasks()
	for i := idx; i >= 0; i-- {
		if i < len(tasksList) && !tasksList[i].Done {
			m.setCursor(i)
			return
		}
	}
	for i := idx + 1; i < len(tasksList); i++ {
		if !tasksList[i].Done {
			m.setCursor(i)
			return
		}
	}
	// Every task is done; leave the cursor alone.
}

func (m *Model) setCursor(idx int) {
	for m.store.CursorIndex() > idx {
		m.store.SelectPrev()
	}
	for m.store.CursorIndex() < idx {
		m.store.SelectNext()
	}
}

// selectionContext is the event payload fragment describing the selected
// task; binding paths like "task.id" resolve against it.
func (m *Model) selectionContext() payload.Value {
	task, ok := m.store.Selected()
	if !ok {
		return payload.NewRecord(nil)
	}
	return payload.NewRecord(map[string]payload.Value{
		"task": payload.NewRecord(map[string]payload.Value{
			"id":    payload.NewInt(int64(task.ID)),
			"title": payload.NewString(task.Title),
			"done":  payload.NewBool(task.Done),
		}),
	})
}

// inputContext exposes the typed title to binding paths ("input.title").
func (m *Model) inputContext() payload.Value {
	return payload.NewRecord(map[string]payload.Value{
		"input": payload.NewRecord(map[string]payload.Value{
			"title": payload.NewString(m.input.Value()),
		}),
	})
}

// dispatchKey runs one key event through the keymap and fans the firings
// out to the status line, the journal, and the hook runner.
func (m *Model) dispatchKey(msg tea.KeyMsg, ctx payload.Value) tea.Cmd {
	firings := m.keymap.Dispatch(msg, ctx)
	if len(firings) == 0 {
		return nil
	}

	var cmds []tea.Cmd
	for _, firing := range firings {
		m.reportFiring(firing)
		m.recordFiring(firing)
		m.appendJournalLine(firing)
		if m.runHooks != nil {
			cmds = append(cmds, runHooksCmd(m.runHooks, firing))
		}
	}
	m.refreshJournalPanel()
	cmds = append(cmds, clearStatusAfter(statusClearDuration))
	return tea.Batch(cmds...)
}

func (m *Model) reportFiring(firing triggers.Firing) {
	switch firing.Outcome {
	case bind.OutcomeExecuted:
		m.errorHandler.Success(fmt.Sprintf("%s executed", firing.Command))
	case bind.OutcomeBlocked:
		m.errorHandler.Info(fmt.Sprintf("%s blocked", firing.Command))
	case bind.OutcomeFailed:
		m.errorHandler.Error(fmt.Sprintf("%s failed: %v", firing.Command, firing.Err))
	default:
		if firing.Err != nil {
			m.errorHandler.Warning(fmt.Sprintf("%s skipped: %v", firing.Trigger, firing.Err))
		} else {
			m.errorHandler.Info(fmt.Sprintf("%s skipped", firing.Trigger))
		}
	}
}

func (m *Model) recordFiring(firing triggers.Firing) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Record(firing); err != nil {
		m.errorHandler.Warning(fmt.Sprintf("journal: %v", err))
	}
}

// appendJournalLine formats the firing for the side panel using the
// configured preset.
func (m *Model) appendJournalLine(firing triggers.Firing) {
	line := ""
	if entry, err := journal.NewEntry(firing); err == nil {
		ctx := formatter.ContextFromEntry(entry)
		if rendered, err := formatter.FormatEntry(m.presets, m.engine, m.prefs.JournalFormat, ctx); err == nil {
			line = rendered
		}
	}
	if line == "" {
		line = fmt.Sprintf("%s  %s  [%s]", firing.Trigger, firing.Command, firing.Outcome)
	}

	m.journalLines = append(m.journalLines, line)
	if len(m.journalLines) > journalPanelEntries {
		m.journalLines = m.journalLines[len(m.journalLines)-journalPanelEntries:]
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View is part of tea.Model.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.styles.title.Render("tui-relay demo board"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTasks())
	s.WriteString("\n\n")

	if m.inputMode {
		s.WriteString(m.styles.inputFrame.Render(m.input.View()))
	} else {
		s.WriteString(m.renderStatusLine())
	}
	s.WriteString("\n")
	s.WriteString(m.renderActionBar())
	s.WriteString("\n")

	if m.prefs.ShowJournal {
		s.WriteString(m.renderJournalPanel())
		s.WriteString("\n")
	}

	s.WriteString(m.helpView.View(m.keymap))
	return s.String()
}

func (m *Model) renderTasks() string {
	all := m.store.Tasks()
	selected, hasSelection := m.store.Selected()

	var rows []string
	hidden := 0
	for _, task := range all {
		if !m.showDone && task.Done {
			hidden++
			continue
		}
		marker := "○"
		if task.Done {
			marker = "●"
		}
		line := fmt.Sprintf(" %s %3d  %s", marker, task.ID, task.Title)

		style := m.styles.row
		if task.Done {
			style = m.styles.rowDone
		}
		if hasSelection && task.ID == selected.ID {
			style = m.styles.rowSelected
		}
		rows = append(rows, style.Render(line))
	}

	if len(rows) == 0 {
		if hidden > 0 {
			return m.styles.hint.Render(fmt.Sprintf("all %d tasks done and hidden (press d to show)", hidden))
		}
		return m.styles.hint.Render("no tasks yet (press a to add one)")
	}
	if hidden > 0 {
		rows = append(rows, m.styles.hint.Render(fmt.Sprintf(" … %d done hidden", hidden)))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderStatusLine() string {
	if !m.hasStatusMessage {
		return m.styles.hint.Render("a: add task  ·  ?: toggle help")
	}
	return m.styles.status(m.statusMessageType).Render(m.statusMessage)
}

// renderActionBar draws one button per key binding; a disabled binding
// renders dimmed, mirroring its command's executability.
func (m *Model) renderActionBar() string {
	var buttons []string
	for _, trigger := range m.keymap.Triggers() {
		binding := trigger.Binding()
		label := fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc)
		if binding.Enabled() {
			buttons = append(buttons, m.styles.buttonOn.Render(label))
		} else {
			buttons = append(buttons, m.styles.buttonOff.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *Model) renderJournalPanel() string {
	title := m.styles.panelTitle.Render(fmt.Sprintf("journal (%s)", m.prefs.JournalFormat))
	return title + "\n" + m.styles.panel.Render(m.journalPanel.View())
}

// refreshJournalPanel pushes the buffered lines into the viewport,
// pinned to the newest entry.
func (m *Model) refreshJournalPanel() {
	if len(m.journalLines) == 0 {
		m.journalPanel.SetContent(m.styles.hint.Render("no invocations yet"))
		return
	}
	m.journalPanel.SetContent(strings.Join(m.journalLines, "\n"))
	m.journalPanel.GotoBottom()
}

package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/errors"
	"github.com/cristianoliveira/tui-relay/internal/settings"
	"github.com/cristianoliveira/tui-relay/internal/tasks"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

type fakeRecorder struct {
	firings []triggers.Firing
	err     error
}

func (r *fakeRecorder) Record(firing triggers.Firing) error {
	r.firings = append(r.firings, firing)
	return r.err
}

func demoKeymap(t *testing.T, reg *command.Registry) *triggers.Keymap {
	t.Helper()
	lookup := func(name string) command.Command {
		cmd, err := reg.Lookup(name)
		require.NoError(t, err)
		return cmd
	}

	newTrigger := func(chord, name, help, path string) *triggers.KeyTrigger {
		opts := []bind.BridgeOption{bind.WithCommand(lookup(name))}
		if path != "" {
			opts = append(opts, bind.WithParameterPath(path))
		}
		binding := key.NewBinding(key.WithKeys(chord), key.WithHelp(chord, help))
		return triggers.NewKeyTrigger(binding, bind.NewBridge(opts...))
	}

	return triggers.NewKeymap(
		newTrigger("enter", tasks.CmdAdd, "add typed task", "input.title"),
		newTrigger("c", tasks.CmdComplete, "complete task", "task.id"),
		newTrigger("x", tasks.CmdRemove, "remove task", "task.id"),
		newTrigger("u", tasks.CmdUndo, "undo", ""),
		newTrigger("D", tasks.CmdClearDone, "clear done", ""),
	)
}

func newTestModel(t *testing.T, opts ...func(*Options)) (*Model, *tasks.Store) {
	t.Helper()
	store := tasks.NewStore()
	reg, err := tasks.Commands(store)
	require.NoError(t, err)

	options := Options{
		Store:    store,
		Registry: reg,
		Keymap:   demoKeymap(t, reg),
		Settings: settings.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	m, err := NewModel(options)
	require.NoError(t, err)
	return m, store
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(m *Model, text string) {
	for _, r := range text {
		m.Update(keyPress(r))
	}
}

func addViaInput(t *testing.T, m *Model, title string) {
	t.Helper()
	m.Update(keyPress('a'))
	require.True(t, m.inputMode)
	typeString(m, title)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.inputMode)
}

func TestNewModelValidatesCollaborators(t *testing.T) {
	store := tasks.NewStore()
	reg, err := tasks.Commands(store)
	require.NoError(t, err)

	_, err = NewModel(Options{Registry: reg, Keymap: triggers.NewKeymap()})
	assert.ErrorContains(t, err, "store")

	_, err = NewModel(Options{Store: store, Keymap: triggers.NewKeymap()})
	assert.ErrorContains(t, err, "registry")

	_, err = NewModel(Options{Store: store, Registry: reg})
	assert.ErrorContains(t, err, "keymap")
}

func TestNewModelMirrorsGuardsOntoBindings(t *testing.T) {
	m, _ := newTestModel(t)

	enabled := map[string]bool{}
	for _, trigger := range m.keymap.Triggers() {
		enabled[trigger.Name()] = trigger.Binding().Enabled()
	}

	// Empty board: typed add stays available, everything else is off.
	assert.True(t, enabled["enter"])
	assert.False(t, enabled["c"])
	assert.False(t, enabled["x"])
	assert.False(t, enabled["u"])
	assert.False(t, enabled["D"])
}

func TestTypedAddFlowsThroughBridge(t *testing.T) {
	m, store := newTestModel(t)

	addViaInput(t, m, "write the report")

	require.Equal(t, 1, store.Len())
	assert.Equal(t, "write the report", store.Tasks()[0].Title)

	// The mutation re-enables guards that now hold.
	for _, trigger := range m.keymap.Triggers() {
		if trigger.Name() == "c" || trigger.Name() == "x" || trigger.Name() == "u" {
			assert.True(t, trigger.Binding().Enabled(), "trigger %s", trigger.Name())
		}
	}
}

func TestInputModeSuppressesCommandBindings(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "first")

	m.Update(keyPress('a'))
	require.True(t, m.inputMode)

	// "c" is the complete chord, but in input mode it is just a letter.
	m.Update(keyPress('c'))
	assert.False(t, store.Tasks()[0].Done)
	assert.Equal(t, "c", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.inputMode)
	require.Equal(t, 1, store.Len())
}

func TestCompleteUsesSelectionContext(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "first")
	addViaInput(t, m, "second")

	// Cursor is on "second"; move up to "first" and complete it.
	m.Update(keyPress('k'))
	m.Update(keyPress('c'))

	tasksList := store.Tasks()
	assert.True(t, tasksList[0].Done)
	assert.False(t, tasksList[1].Done)
}

func TestCompletedLastOpenTaskDisablesCompleteBinding(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "only")

	m.Update(keyPress('c'))

	require.True(t, store.Tasks()[0].Done)
	for _, trigger := range m.keymap.Triggers() {
		switch trigger.Name() {
		case "c":
			assert.False(t, trigger.Binding().Enabled(), "complete must disable")
		case "D":
			assert.True(t, trigger.Binding().Enabled(), "clear-done must enable")
		}
	}
}

func TestUndoKeyRestoresBoard(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "only")
	m.Update(keyPress('c'))
	require.True(t, store.Tasks()[0].Done)

	m.Update(keyPress('u'))

	assert.False(t, store.Tasks()[0].Done)
}

func TestDispatchReportsOutcomeOnStatusLine(t *testing.T) {
	m, _ := newTestModel(t)
	addViaInput(t, m, "only")

	m.Update(keyPress('c'))

	require.True(t, m.hasStatusMessage)
	assert.Equal(t, errors.MessageTypeSuccess, m.statusMessageType)
	assert.Contains(t, m.statusMessage, tasks.CmdComplete)
}

func TestNormalModeEnterReportsResolutionFailure(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "only")

	// Outside input mode there is no input.title to resolve.
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 1, store.Len())
	require.True(t, m.hasStatusMessage)
	assert.Equal(t, errors.MessageTypeWarning, m.statusMessageType)
	assert.Contains(t, m.statusMessage, "skipped")
}

func TestRecorderSeesEveryFiring(t *testing.T) {
	recorder := &fakeRecorder{}
	m, _ := newTestModel(t, func(o *Options) { o.Recorder = recorder })

	addViaInput(t, m, "only")
	m.Update(keyPress('c'))

	require.Len(t, recorder.firings, 2)
	assert.Equal(t, tasks.CmdAdd, recorder.firings[0].Command)
	assert.Equal(t, tasks.CmdComplete, recorder.firings[1].Command)
	assert.Equal(t, bind.OutcomeExecuted, recorder.firings[1].Outcome)
}

func TestRecorderFailureWarnsButContinues(t *testing.T) {
	recorder := &fakeRecorder{err: fmt.Errorf("disk full")}
	m, store := newTestModel(t, func(o *Options) { o.Recorder = recorder })

	addViaInput(t, m, "only")

	assert.Equal(t, 1, store.Len())
	require.True(t, m.hasStatusMessage)
	assert.Equal(t, errors.MessageTypeWarning, m.statusMessageType)
}

func TestJournalPanelCollectsFormattedLines(t *testing.T) {
	m, _ := newTestModel(t)

	addViaInput(t, m, "only")
	m.Update(keyPress('c'))

	require.Len(t, m.journalLines, 2)
	assert.Contains(t, m.journalLines[0], tasks.CmdAdd)
	assert.Contains(t, m.journalLines[1], "[executed]")
}

func TestHooksRunPerFiring(t *testing.T) {
	var ran []string
	runHooks := func(firing triggers.Firing) error {
		ran = append(ran, firing.Command)
		return nil
	}
	m, _ := newTestModel(t, func(o *Options) { o.RunHooks = runHooks })
	addViaInput(t, m, "only")

	_, cmd := m.handleKeyMsg(keyPress('c'))
	require.NotNil(t, cmd)
	drainCmd(t, m, cmd)

	assert.Contains(t, ran, tasks.CmdComplete)
}

func TestHookFailureSurfacesOnStatusLine(t *testing.T) {
	runHooks := func(triggers.Firing) error { return fmt.Errorf("script exploded") }
	m, _ := newTestModel(t, func(o *Options) { o.RunHooks = runHooks })
	addViaInput(t, m, "only")

	_, cmd := m.handleKeyMsg(keyPress('c'))
	drainCmd(t, m, cmd)

	require.True(t, m.hasStatusMessage)
	assert.Equal(t, errors.MessageTypeError, m.statusMessageType)
	assert.Contains(t, m.statusMessage, "script exploded")
}

// drainCmd executes a tea command tree, feeding produced messages back
// into the model. Commands that do not produce a message promptly are
// assumed to be ticks and skipped.
func drainCmd(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		switch msg := msg.(type) {
		case tea.BatchMsg:
			for _, sub := range msg {
				drainCmd(t, m, sub)
			}
		default:
			m.Update(msg)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMovementSkipsHiddenDoneTasks(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "one")
	addViaInput(t, m, "two")
	addViaInput(t, m, "three")

	// Complete "two" (middle), hide done, then walk from the bottom up.
	m.Update(keyPress('k'))
	m.Update(keyPress('c'))
	m.showDone = false

	m.setCursor(2)
	m.Update(keyPress('k'))

	selected, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "one", selected.Title)
}

func TestToggleShowDoneSnapsSelection(t *testing.T) {
	m, store := newTestModel(t)
	addViaInput(t, m, "one")
	addViaInput(t, m, "two")
	m.Update(keyPress('c'))

	// Selection sits on the now-done "two"; hiding must move it.
	m.Update(keyPress('d'))

	selected, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "one", selected.Title)
	assert.False(t, m.showDone)
}

func TestClearStatusMsgClearsStatusLine(t *testing.T) {
	m, _ := newTestModel(t)
	addViaInput(t, m, "only")
	require.True(t, m.hasStatusMessage)

	m.Update(clearStatusMsg{})

	assert.False(t, m.hasStatusMessage)
}

func TestQuitSavesSettingsAndDetaches(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Load()

	m, _ := newTestModel(t, func(o *Options) {
		s := settings.DefaultSettings()
		s.ShowJournal = true
		o.Settings = s
	})
	m.showDone = false

	_, cmd := m.quit()
	require.NotNil(t, cmd)

	saved, err := settings.Load()
	require.NoError(t, err)
	assert.False(t, saved.ShowDone)
	assert.True(t, saved.ShowJournal)

	for _, trigger := range m.keymap.Triggers() {
		assert.Equal(t, bind.StateDetached, trigger.Bridge().State())
	}
}

func TestViewRendersBoard(t *testing.T) {
	m, _ := newTestModel(t)
	addViaInput(t, m, "ship it")

	view := m.View()

	assert.Contains(t, view, "tui-relay demo board")
	assert.Contains(t, view, "ship it")
}

func TestViewShowsHiddenDoneSummary(t *testing.T) {
	m, _ := newTestModel(t)
	addViaInput(t, m, "one")
	addViaInput(t, m, "two")
	m.Update(keyPress('c'))
	m.Update(keyPress('d'))

	view := m.View()

	assert.Contains(t, view, "1 done hidden")
	assert.NotContains(t, view, "two")
}

func TestJournalPanelToggle(t *testing.T) {
	m, _ := newTestModel(t)
	require.False(t, m.prefs.ShowJournal)

	m.Update(keyPress('J'))
	assert.True(t, m.prefs.ShowJournal)

	view := m.View()
	assert.Contains(t, view, "journal (")
}

//go:build integration
// +build integration

package cmd

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tui-relay/assets"
	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/bindfile"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/formatter"
	"github.com/cristianoliveira/tui-relay/internal/journal"
	"github.com/cristianoliveira/tui-relay/internal/payload"
	"github.com/cristianoliveira/tui-relay/internal/tasks"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestBoardPipelineIntegration drives the full path a demo keypress
// takes: embedded binding file -> keymap -> bridge -> board command ->
// journal -> formatter, against a real SQLite journal.
func TestBoardPipelineIntegration(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Load()

	store := tasks.NewStore()
	reg, err := tasks.Commands(store)
	require.NoError(t, err)

	file, err := bindfile.Parse(assets.DefaultBindings())
	require.NoError(t, err)
	keymap, err := bindfile.Build(file, reg)
	require.NoError(t, err)
	require.NoError(t, keymap.Attach())
	defer keymap.Detach()

	journalStore, err := journal.Open(config.Get("journal_path", ""))
	require.NoError(t, err)
	defer func() { require.NoError(t, journalStore.Close()) }()

	record := func(firings []triggers.Firing) {
		t.Helper()
		for _, firing := range firings {
			require.NoError(t, journalStore.Record(firing))
		}
	}

	// "A" carries a literal parameter: one task appears.
	firings := keymap.Dispatch(keyRune('A'), payload.NewRecord(nil))
	require.Len(t, firings, 1)
	assert.Equal(t, bind.OutcomeExecuted, firings[0].Outcome)
	require.Equal(t, 1, store.Len())
	record(firings)

	// "c" resolves task.id from the selection context.
	selected, ok := store.Selected()
	require.True(t, ok)
	ctx := payload.NewRecord(map[string]payload.Value{
		"task": payload.NewRecord(map[string]payload.Value{
			"id": payload.NewInt(int64(selected.ID)),
		}),
	})
	firings = keymap.Dispatch(keyRune('c'), ctx)
	require.Len(t, firings, 1)
	assert.Equal(t, bind.OutcomeExecuted, firings[0].Outcome)
	record(firings)

	task, ok := store.Find(selected.ID)
	require.True(t, ok)
	assert.True(t, task.Done)

	// "c" again: the guard now blocks, and the binding is disabled, so
	// the key no longer matches at all.
	firings = keymap.Dispatch(keyRune('c'), ctx)
	assert.Empty(t, firings)

	// The journal saw both executions and the formatter renders them.
	entries, err := journalStore.List(journal.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	presets := formatter.NewPresetRegistry()
	engine := formatter.NewTemplateEngine()
	line, err := formatter.FormatEntry(presets, engine, "compact", formatter.ContextFromEntry(entries[0]))
	require.NoError(t, err)
	assert.Contains(t, line, "task.complete")
	assert.Contains(t, line, "[executed]")

	// Detached bridges skip: nothing executes, nothing worth recording.
	keymap.Detach()
	before := store.Len()
	firings = keymap.Dispatch(keyRune('A'), payload.NewRecord(nil))
	for _, firing := range firings {
		assert.Equal(t, bind.OutcomeSkipped, firing.Outcome)
	}
	assert.Equal(t, before, store.Len())
}

// TestJournalPurgeIntegration exercises append, filtered list and purge
// against one database file.
func TestJournalPurgeIntegration(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Load()

	journalStore, err := journal.Open(config.Get("journal_path", ""))
	require.NoError(t, err)
	defer func() { require.NoError(t, journalStore.Close()) }()

	old := time.Now().Add(-90 * 24 * time.Hour)
	for i, at := range []time.Time{old, time.Now()} {
		command := "task.add"
		if i == 1 {
			command = "task.undo"
		}
		require.NoError(t, journalStore.Record(triggers.Firing{
			Trigger: "x",
			Command: command,
			Outcome: bind.OutcomeExecuted,
			At:      at,
		}))
	}

	entries, err := journalStore.List(journal.Filter{Command: "task.undo"})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	purged, err := journalStore.Purge(time.Now().Add(-30 * 24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	entries, err = journalStore.List(journal.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "task.undo", entries[0].Command)
}

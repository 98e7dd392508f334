package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/journal"
	"github.com/cristianoliveira/tui-relay/internal/payload"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

// useTempJournal swaps the journal opener for one backed by a temp file
// and returns the path so tests can seed it.
func useTempJournal(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	orig := openJournalFunc
	openJournalFunc = func() (*journal.Store, error) {
		return journal.Open(path)
	}
	t.Cleanup(func() { openJournalFunc = orig })
	return path
}

func seedFiring(t *testing.T, path string, command string, at time.Time) {
	t.Helper()
	store, err := journal.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	require.NoError(t, store.Record(triggers.Firing{
		Trigger:   "c",
		Command:   command,
		Outcome:   bind.OutcomeExecuted,
		Parameter: payload.NewInt(1),
		Payload:   payload.NewRecord(map[string]payload.Value{"task": payload.NewInt(1)}),
		At:        at,
		Duration:  3 * time.Millisecond,
	}))
}

func captureJournalOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := journalOutputWriter
	var buf bytes.Buffer
	journalOutputWriter = &buf
	t.Cleanup(func() { journalOutputWriter = orig })
	return &buf
}

func TestRunJournalListRendersPreset(t *testing.T) {
	isolateConfig(t)
	path := useTempJournal(t)
	seedFiring(t, path, "task.complete", time.Now())
	seedFiring(t, path, "task.add", time.Now().Add(-time.Minute))
	buf := captureJournalOutput(t)

	require.NoError(t, runJournalList(journal.Filter{Limit: 20}, "compact", true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	// Newest first.
	assert.Contains(t, lines[0], "task.complete")
	assert.Contains(t, lines[1], "task.add")
	assert.Contains(t, lines[0], "[executed]")
}

func TestRunJournalListLiteralTemplate(t *testing.T) {
	isolateConfig(t)
	path := useTempJournal(t)
	seedFiring(t, path, "task.undo", time.Now())
	buf := captureJournalOutput(t)

	require.NoError(t, runJournalList(journal.Filter{}, "${command} -> ${outcome}", false))

	assert.Equal(t, "task.undo -> executed\n", buf.String())
}

func TestRunJournalListFiltersByCommand(t *testing.T) {
	isolateConfig(t)
	path := useTempJournal(t)
	seedFiring(t, path, "task.complete", time.Now())
	seedFiring(t, path, "task.add", time.Now())
	buf := captureJournalOutput(t)

	require.NoError(t, runJournalList(journal.Filter{Command: "task.add"}, "compact", true))

	out := buf.String()
	assert.Contains(t, out, "task.add")
	assert.NotContains(t, out, "task.complete")
}

func TestRunJournalListRejectsUnknownPreset(t *testing.T) {
	isolateConfig(t)
	useTempJournal(t)

	err := runJournalList(journal.Filter{}, "glitter", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset not found")
}

func TestRunJournalListEmptyJournal(t *testing.T) {
	isolateConfig(t)
	useTempJournal(t)
	buf := captureJournalOutput(t)

	require.NoError(t, runJournalList(journal.Filter{}, "compact", true))

	assert.Empty(t, buf.String())
}

func TestRunJournalPurgeDeletesOldEntries(t *testing.T) {
	isolateConfig(t)
	path := useTempJournal(t)
	seedFiring(t, path, "task.add", time.Now().Add(-100*time.Hour))
	seedFiring(t, path, "task.complete", time.Now())

	require.NoError(t, runJournalPurge(72*time.Hour, true))

	store, err := journal.Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	entries, err := store.List(journal.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "task.complete", entries[0].Command)
}

func TestRunJournalPurgeDefaultsToKeepDays(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TUI_RELAY_JOURNAL_KEEP_DAYS", "2")
	config.Load()
	path := useTempJournal(t)
	seedFiring(t, path, "task.add", time.Now().Add(-3*24*time.Hour))
	seedFiring(t, path, "task.complete", time.Now().Add(-24*time.Hour))

	require.NoError(t, runJournalPurge(0, true))

	store, err := journal.Open(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	entries, err := store.List(journal.Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "task.complete", entries[0].Command)
}

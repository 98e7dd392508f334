/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/colors"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/formatter"
	"github.com/cristianoliveira/tui-relay/internal/hooks"
	"github.com/cristianoliveira/tui-relay/internal/journal"
)

const (
	journalCommandLong = `Inspect the invocation journal.

USAGE:
    tui-relay journal <subcommand>

SUBCOMMANDS:
    list     Render journal entries through a template
    purge    Delete entries older than a cutoff

EXAMPLES:
    # Last twenty invocations, one line each
    tui-relay journal list

    # Failures only, with parameters and timing
    tui-relay journal list --outcome failed --preset detailed

    # Everything older than thirty days, no confirmation
    tui-relay journal purge --older-than 720h --yes`
	journalListLong = `Render journal entries through a template, newest first.

USAGE:
    tui-relay journal list [OPTIONS]

OPTIONS:
    --limit <n>          Maximum entries to show (default: 20, 0 for all)
    --command <name>     Only entries for this command
    --outcome <outcome>  Only entries with this outcome:
                         executed, blocked, skipped, failed
    --preset <name>      Template preset: compact, detailed, csv, trace
    --format <template>  Literal ` + "`${variable}`" + ` template (overrides --preset)
    -h, --help           Show this help`
	journalPurgeLong = `Delete journal entries fired before a cutoff and report the count.
Scripts under hooks/journal-purge run afterwards.

USAGE:
    tui-relay journal purge [OPTIONS]

OPTIONS:
    --older-than <dur>   Age cutoff as a Go duration, e.g. 72h
                         (default: journal_keep_days from config)
    --yes                Purge without confirmation
    -h, --help           Show this help`
)

// journalOutputWriter is where rendered entries go. Swapped in tests.
var journalOutputWriter io.Writer = os.Stdout

// openJournalFunc opens the configured journal store; swapped in tests.
var openJournalFunc = func() (*journal.Store, error) {
	return journal.Open(config.Get("journal_path", ""))
}

// NewJournalCmd creates the journal command with its subcommands.
func NewJournalCmd() *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the invocation journal",
		Long:  journalCommandLong,
	}

	journalCmd.AddCommand(newJournalListCmd())
	journalCmd.AddCommand(newJournalPurgeCmd())

	return journalCmd
}

func newJournalListCmd() *cobra.Command {
	var (
		limitFlag   int
		commandFlag string
		outcomeFlag string
		presetFlag  string
		formatFlag  string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Render journal entries through a template",
		Long:  journalListLong,
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			template := formatFlag
			if template == "" {
				template = presetFlag
			}
			filter := journal.Filter{
				Command: commandFlag,
				Outcome: outcomeFlag,
				Limit:   limitFlag,
			}
			return runJournalList(filter, template, formatFlag == "")
		},
	}
	listCmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum entries to show (0 for all)")
	listCmd.Flags().StringVar(&commandFlag, "command", "", "Only entries for this command")
	listCmd.Flags().StringVar(&outcomeFlag, "outcome", "", "Only entries with this outcome")
	listCmd.Flags().StringVar(&presetFlag, "preset", "compact", "Template preset")
	listCmd.Flags().StringVar(&formatFlag, "format", "", "Literal template (overrides --preset)")
	return listCmd
}

func newJournalPurgeCmd() *cobra.Command {
	var (
		olderThanFlag time.Duration
		yesFlag       bool
	)
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete entries older than a cutoff",
		Long:  journalPurgeLong,
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return runJournalPurge(olderThanFlag, yesFlag)
		},
	}
	purgeCmd.Flags().DurationVar(&olderThanFlag, "older-than", 0, "Age cutoff (default: journal_keep_days)")
	purgeCmd.Flags().BoolVar(&yesFlag, "yes", false, "Purge without confirmation")
	return purgeCmd
}

// runJournalList renders matching entries, one line per entry. When the
// template is a preset name it must exist; a literal template only has
// to parse.
func runJournalList(filter journal.Filter, template string, isPreset bool) error {
	config.Load()

	presets := formatter.NewPresetRegistry()
	if isPreset {
		if _, err := presets.Get(template); err != nil {
			return fmt.Errorf("journal: %w", err)
		}
	}

	store, err := openJournalFunc()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		colors.Info("journal is empty")
		return nil
	}

	engine := formatter.NewTemplateEngine()
	for _, entry := range entries {
		line, err := formatter.FormatEntry(presets, engine, template, formatter.ContextFromEntry(entry))
		if err != nil {
			return fmt.Errorf("journal: format entry %s: %w", entry.ID, err)
		}
		fmt.Fprintln(journalOutputWriter, line)
	}
	return nil
}

// runJournalPurge deletes entries older than the cutoff. A zero
// olderThan falls back to journal_keep_days from config.
func runJournalPurge(olderThan time.Duration, yes bool) error {
	config.Load()

	if olderThan <= 0 {
		keepDays := config.GetInt("journal_keep_days", 30)
		olderThan = time.Duration(keepDays) * 24 * time.Hour
	}
	cutoff := time.Now().Add(-olderThan)

	if !yes && os.Getenv("CI") == "" {
		if !confirmPurge(cutoff) {
			colors.Info("Operation cancelled")
			return nil
		}
	}

	store, err := openJournalFunc()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	purged, err := store.Purge(cutoff)
	if err != nil {
		return err
	}

	colors.Success(fmt.Sprintf("purged %d entries older than %s", purged, olderThan))

	if hooks.Enabled() {
		err := hooks.Run(hooks.PointJournalPurge, map[string]string{
			"PURGE_COUNT":  strconv.FormatInt(purged, 10),
			"PURGE_CUTOFF": cutoff.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("journal: purge hooks: %w", err)
		}
	}
	return nil
}

// confirmPurge asks the user for confirmation before purging.
func confirmPurge(cutoff time.Time) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Delete all journal entries older than %s? (y/N): ", cutoff.Format(time.RFC3339))
	answer, err := reader.ReadString('\n')
	if err != nil {
		// If we can't read, assume no
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// journalCmd represents the journal command.
var journalCmd = NewJournalCmd()

func init() {
	cmd.RootCmd.AddCommand(journalCmd)
}

/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/bindfile"
	"github.com/cristianoliveira/tui-relay/internal/colors"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/hooks"
	"github.com/cristianoliveira/tui-relay/internal/journal"
	"github.com/cristianoliveira/tui-relay/internal/settings"
	"github.com/cristianoliveira/tui-relay/internal/tui"
	"github.com/cristianoliveira/tui-relay/internal/tui/app"
)

const demoCommandLong = `tui-relay demo - Run the demo task board

USAGE:
    tui-relay demo [OPTIONS]

OPTIONS:
    --bindings <path>   Binding file to load (default: bindings_path from
                        config when the file exists, else the embedded set)
    -h, --help          Show this help

BOARD KEYS:
    a           Open the title input (enter submits, esc cancels)
    j/k         Move the selection
    d           Show or hide done tasks
    J           Toggle the journal panel
    ?           Expand the help view
    q, ctrl+c   Quit

Every other key is relayed through the binding file. Keys whose command
is currently blocked are disabled: dimmed in the action bar and hidden
from help.`

// programRunner runs the assembled board; swapped in tests.
var programRunner app.ProgramRunner = app.NewDefaultProgramRunner()

// settingsLoader loads the persisted board preferences; swapped in tests.
var settingsLoader app.SettingsLoader = app.NewDefaultSettingsLoader()

// demoCmd represents the demo command.
var demoCmd = NewDemoCmd()

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	var bindingsFlag string

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demo task board",
		Long:  demoCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return runDemo(bindingsFlag)
		},
	}

	demoCmd.Flags().StringVar(&bindingsFlag, "bindings", "", "Binding file to load")

	return demoCmd
}

func init() {
	cmd.RootCmd.AddCommand(demoCmd)
}

// runDemo assembles the board from the binding file, the journal, the
// hook runner and the persisted preferences, then hands it to the
// program runner.
func runDemo(bindingsPath string) error {
	config.Load()

	file, source, err := loadBindingFile(bindingsPath)
	if err != nil {
		return err
	}
	keymap, err := bindfile.Build(file, boardCommands)
	if err != nil {
		return fmt.Errorf("demo: %s: %w", source, err)
	}

	prefs, err := settingsLoader.Load()
	if err != nil {
		colors.Warning(fmt.Sprintf("using default settings: %v", err))
		prefs = settings.DefaultSettings()
	}

	opts := tui.Options{
		Store:    boardStore,
		Registry: boardCommands,
		Keymap:   keymap,
		Settings: prefs,
	}

	if config.GetBool("journal_enabled", true) {
		store, err := journal.Open(config.Get("journal_path", ""))
		if err != nil {
			colors.Warning(fmt.Sprintf("journal disabled: %v", err))
		} else {
			defer func() { _ = store.Close() }()
			opts.Recorder = store
		}
	}

	if hooks.Enabled() {
		if err := hooks.Init(); err != nil {
			colors.Warning(fmt.Sprintf("hooks disabled: %v", err))
		} else {
			opts.RunHooks = hooks.RunInvocation
		}
	}

	model, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	return programRunner.Run(model)
}

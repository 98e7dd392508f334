/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/assets"
	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/bindfile"
	"github.com/cristianoliveira/tui-relay/internal/colors"
	"github.com/cristianoliveira/tui-relay/internal/config"
)

const (
	bindingsCommandLong = `Inspect and validate binding files.

USAGE:
    tui-relay bindings <subcommand>

SUBCOMMANDS:
    list     Print the effective binding table
    check    Validate a binding file against the board commands

EXAMPLES:
    # Show the bindings the demo would use
    tui-relay bindings list

    # Validate a file before installing it
    tui-relay bindings check --bindings ./my-bindings.toml`
	bindingsListLong = `Print the effective binding table: keys, command, parameter source
and help label for every binding the demo board would load.

USAGE:
    tui-relay bindings list [OPTIONS]

OPTIONS:
    --bindings <path>   Binding file to inspect instead of the default
    -h, --help          Show this help`
	bindingsCheckLong = `Validate a binding file against the board commands. Unknown fields,
unknown commands, empty or duplicate key chords and malformed parameter
paths are reported; the exit code is non-zero on the first error.

USAGE:
    tui-relay bindings check [OPTIONS]

OPTIONS:
    --bindings <path>   Binding file to check instead of the default
    -h, --help          Show this help`
)

// bindingsOutputWriter is where the binding table goes. Swapped in tests.
var bindingsOutputWriter io.Writer = os.Stdout

// loadBindingFile loads the binding file the demo board would use: the
// explicit path when given, else the configured bindings_path when that
// file exists, else the embedded defaults. The returned string names the
// source for error messages.
func loadBindingFile(path string) (*bindfile.File, string, error) {
	if path != "" {
		file, err := bindfile.Load(path)
		return file, path, err
	}

	if configured := config.Get("bindings_path", ""); configured != "" {
		if _, err := os.Stat(configured); err == nil {
			file, err := bindfile.Load(configured)
			return file, configured, err
		}
	}

	file, err := bindfile.Parse(assets.DefaultBindings())
	return file, "embedded default bindings", err
}

// NewBindingsCmd creates the bindings command with its subcommands.
func NewBindingsCmd() *cobra.Command {
	bindingsCmd := &cobra.Command{
		Use:   "bindings",
		Short: "Inspect and validate binding files",
		Long:  bindingsCommandLong,
	}

	bindingsCmd.AddCommand(newBindingsListCmd())
	bindingsCmd.AddCommand(newBindingsCheckCmd())

	return bindingsCmd
}

func newBindingsListCmd() *cobra.Command {
	var bindingsFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the effective binding table",
		Long:  bindingsListLong,
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return runBindingsList(bindingsFlag)
		},
	}
	listCmd.Flags().StringVar(&bindingsFlag, "bindings", "", "Binding file to inspect")
	return listCmd
}

func newBindingsCheckCmd() *cobra.Command {
	var bindingsFlag string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a binding file against the board commands",
		Long:  bindingsCheckLong,
		Args:  cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return runBindingsCheck(bindingsFlag)
		},
	}
	checkCmd.Flags().StringVar(&bindingsFlag, "bindings", "", "Binding file to check")
	return checkCmd
}

// runBindingsList prints the binding table for the effective file.
func runBindingsList(path string) error {
	config.Load()

	file, source, err := loadBindingFile(path)
	if err != nil {
		return err
	}
	if err := bindfile.Validate(file, boardCommands); err != nil {
		return err
	}

	fmt.Fprintf(bindingsOutputWriter, "bindings from %s\n\n", source)
	fmt.Fprintf(bindingsOutputWriter, "    %-14s %-18s %-26s %s\n", "KEYS", "COMMAND", "PARAMETER", "HELP")
	for _, b := range file.Bindings {
		fmt.Fprintf(bindingsOutputWriter, "    %-14s %-18s %-26s %s\n",
			strings.Join(b.Keys, ", "), b.Command, describeParameter(b), b.Help)
	}
	return nil
}

// describeParameter renders the parameter column: the resolution path,
// the literal fallback, or both.
func describeParameter(b bindfile.Binding) string {
	switch {
	case b.Path != "" && b.Parameter != nil:
		return fmt.Sprintf("path=%s, else %v", b.Path, b.Parameter)
	case b.Path != "":
		return "path=" + b.Path
	case b.Parameter != nil:
		return fmt.Sprintf("param=%v", b.Parameter)
	default:
		return "-"
	}
}

// runBindingsCheck validates the effective file and reports the result.
func runBindingsCheck(path string) error {
	config.Load()

	file, source, err := loadBindingFile(path)
	if err != nil {
		return err
	}
	if err := bindfile.Validate(file, boardCommands); err != nil {
		return err
	}

	colors.Success(fmt.Sprintf("%d bindings OK (%s)", len(file.Bindings), source))
	return nil
}

// bindingsCmd represents the bindings command.
var bindingsCmd = NewBindingsCmd()

func init() {
	cmd.RootCmd.AddCommand(bindingsCmd)
}

/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/internal/version"
)

// RootCmd is the base command when called without any subcommands. The
// binary package registers every subcommand onto it from init functions.
var RootCmd = &cobra.Command{
	Use:   "tui-relay",
	Short: "Key bindings that relay UI triggers to guarded commands.",
	Long:  `Key bindings that relay UI triggers to guarded commands.`,
}

// Execute runs the root command with all registered children. It is
// called once from main.
func Execute() error {
	return RootCmd.Execute()
}

// outputWriter is where help text goes; nil means stdout. Tests swap it.
var outputWriter io.Writer

func init() {
	// Set version for use in help output
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		// Subcommands carry their own usage block in Long; the root
		// overview is reserved for the root and the help command.
		if cmd != cmd.Root() && cmd.Long != "" {
			w := outputWriter
			if w == nil {
				w = cmd.OutOrStdout()
			}
			fmt.Fprintln(w, cmd.Long)
			return
		}
		PrintHelp(cmd.Root())
	})
}

// PrintHelp writes the top-level help overview for root.
func PrintHelp(root *cobra.Command) {
	w := outputWriter
	if w == nil {
		w = os.Stdout
	}

	// Order of commands in the overview
	commandOrder := []string{
		"demo",
		"bindings",
		"journal",
		"docs",
		"version",
		"help",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`tui-relay v%s

Key bindings that relay UI triggers to guarded commands.

USAGE:
    tui-relay [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, root.Version, strings.Join(cmdLines, "\n"))
	fmt.Fprint(w, helpText)
}

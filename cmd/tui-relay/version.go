/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/version"
)

// versionOutputWriter is where the version line goes. Swapped in tests.
var versionOutputWriter io.Writer = os.Stdout

// PrintVersion writes the version line.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "tui-relay version %s\n", version.String())
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of tui-relay.`,
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		PrintVersion()
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}

/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tui-relay/assets"
	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/config"
)

const docsCommandLong = `tui-relay docs - Show the user guide

USAGE:
    tui-relay docs

The guide is rendered for the terminal. The docs_style config key picks
the style: auto (detect background), dark, light or notty.`

const docsWordWrap = 100

// docsOutputWriter is where the rendered guide goes. Swapped in tests.
var docsOutputWriter io.Writer = os.Stdout

// docsCmd represents the docs command.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the user guide",
	Long:  docsCommandLong,
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runDocs()
	},
}

func init() {
	cmd.RootCmd.AddCommand(docsCmd)
}

// runDocs renders the embedded guide with glamour.
func runDocs() error {
	config.Load()

	style := config.Get("docs_style", "auto")
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(docsWordWrap)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("docs: build renderer: %w", err)
	}

	out, err := renderer.Render(string(assets.Guide()))
	if err != nil {
		return fmt.Errorf("docs: render guide: %w", err)
	}

	fmt.Fprint(docsOutputWriter, out)
	return nil
}

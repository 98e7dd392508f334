/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/cristianoliveira/tui-relay/internal/tasks"
)

// Shared demo-board state. A process runs a single subcommand, so the
// board and its command registry can be built once and reused by demo
// and bindings.
var boardStore = tasks.NewStore()
var boardCommands, _ = tasks.Commands(boardStore)

package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/tui-relay/cmd"
	"github.com/cristianoliveira/tui-relay/internal/colors"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run wires config and the file logger around the root command. Split
// from main so tests can drive it with a stub executor.
func run(args []string, execute func() error) int {
	config.Load()
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	defer func() { _ = logging.ShutdownGlobal() }()

	logging.Info("started", "component", "main", "args", args)
	if err := execute(); err != nil {
		logging.Error("failed", "component", "main", "error", err)
		return 1
	}
	logging.Info("completed", "component", "main")
	return 0
}

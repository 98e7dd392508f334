// Command testseed fills a journal with sample invocations so that
// `tui-relay journal list` has something to show during development.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/config"
	"github.com/cristianoliveira/tui-relay/internal/journal"
	"github.com/cristianoliveira/tui-relay/internal/payload"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

func main() {
	config.Load()
	dbPath := config.Get("journal_path", "")
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open journal: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	now := time.Now()
	firings := []triggers.Firing{
		{
			Trigger: "A", Command: "task.add", Outcome: bind.OutcomeExecuted,
			Parameter: payload.NewString("quick task"),
			At:        now.Add(-3 * time.Minute), Duration: 180 * time.Microsecond,
		},
		{
			Trigger: "c", Command: "task.complete", Outcome: bind.OutcomeExecuted,
			Parameter: payload.NewInt(1),
			At:        now.Add(-2 * time.Minute), Duration: 95 * time.Microsecond,
		},
		{
			Trigger: "enter", Command: "task.add", Outcome: bind.OutcomeSkipped,
			Err: fmt.Errorf("path %q: no such field", "input.title"),
			At:  now.Add(-time.Minute), Duration: 12 * time.Microsecond,
		},
		{
			Trigger: "u", Command: "task.undo", Outcome: bind.OutcomeBlocked,
			At: now, Duration: 8 * time.Microsecond,
		},
	}

	for _, firing := range firings {
		if err := store.Record(firing); err != nil {
			fmt.Fprintf(os.Stderr, "record: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("seeded %s %s [%s]\n", firing.Trigger, firing.Command, firing.Outcome)
	}
	fmt.Printf("journal: %s\n", dbPath)
}

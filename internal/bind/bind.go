// Package bind connects UI elements to commands. A Behavior mediates one
// element and one command: it executes the command with an effective
// parameter, gates execution on the command's executability, and mirrors
// that executability onto the element's enabled flag. A Bridge layers the
// declarative side on top: it owns the configured command, parameter, and
// parameter path, follows an attach/detach lifecycle against an element,
// and resolves trigger payloads into command parameters on each invoke.
//
// Everything in this package is single-threaded by contract: drive it from
// the UI event loop. Commands themselves may notify executability changes
// from that same loop; handlers run synchronously.
package bind

import "fmt"

// Element is the bridge's view of a UI element: a mutable enabled flag.
// *triggers.BindingElement adapts a bubbles key.Binding to it; any widget
// with an enabled state can participate.
type Element interface {
	Enabled() bool
	SetEnabled(bool)
}

// Outcome reports what an execution attempt amounted to.
type Outcome int

const (
	// OutcomeSkipped means nothing was attempted: no command configured,
	// bridge not attached, or parameter resolution failed (the error says
	// which).
	OutcomeSkipped Outcome = iota
	// OutcomeBlocked means the command's guard vetoed execution.
	OutcomeBlocked
	// OutcomeExecuted means the command ran and returned nil.
	OutcomeExecuted
	// OutcomeFailed means the command ran and returned an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeExecuted:
		return "executed"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "skipped":
		return OutcomeSkipped, nil
	case "blocked":
		return OutcomeBlocked, nil
	case "executed":
		return OutcomeExecuted, nil
	case "failed":
		return OutcomeFailed, nil
	default:
		return OutcomeSkipped, fmt.Errorf("unknown outcome %q", s)
	}
}

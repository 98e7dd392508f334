// Package command defines the command contract that triggers invoke, plus
// a funcs-based implementation (Relay) and a named registry.
//
// A command only has to execute. Two optional capabilities are detected by
// interface assertion: Guarded commands can veto execution for a given
// parameter, and Observable commands announce that their executability may
// have changed so bound UI elements can refresh their enabled state.
package command

import "github.com/cristianoliveira/tui-relay/internal/payload"

// Command executes with a resolved parameter. Execution errors are
// returned to the invoker unchanged.
type Command interface {
	Execute(param payload.Value) error
}

// Guarded is the optional executability capability. CanExecute must be
// cheap and side-effect free: bound elements call it on every refresh.
type Guarded interface {
	CanExecute(param payload.Value) bool
}

// Observable is the optional change-notification capability. The returned
// unsubscribe func releases the registration and is safe to call more than
// once. Handlers run synchronously on the announcing goroutine.
type Observable interface {
	OnCanExecuteChanged(fn func()) (unsubscribe func())
}

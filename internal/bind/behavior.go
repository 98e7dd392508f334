package bind

import (
	"errors"

	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/payload"
)

// ErrNilElement indicates an attach or construction without an element.
var ErrNilElement = errors.New("element cannot be nil")

// NoCommandPolicy decides what Refresh does to the element's enabled flag
// while no command is held.
type NoCommandPolicy int

const (
	// KeepEnabledState leaves the flag exactly as the host set it. This is
	// the default: an unconfigured behavior stays invisible.
	KeepEnabledState NoCommandPolicy = iota
	// ForceEnabledWhenUnset forces the flag to true, treating "no command"
	// like "command without a guard".
	ForceEnabledWhenUnset
)

// BehaviorOption configures a Behavior during construction.
type BehaviorOption func(*Behavior)

// WithNoCommandPolicy overrides the default KeepEnabledState policy.
func WithNoCommandPolicy(policy NoCommandPolicy) BehaviorOption {
	return func(b *Behavior) {
		b.noCommand = policy
	}
}

// Behavior mediates between one element and one command: execution with
// guard gating, and enabled-state mirroring. Every setter refreshes the
// element synchronously; Refresh is idempotent for unchanged inputs.
type Behavior struct {
	element     Element
	cmd         command.Command
	parameter   payload.Value
	unsubscribe func()
	noCommand   NoCommandPolicy
}

// NewBehavior binds a behavior to element.
func NewBehavior(element Element, opts ...BehaviorOption) (*Behavior, error) {
	if element == nil {
		return nil, ErrNilElement
	}
	b := &Behavior{element: element}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Command returns the held command, nil when none is set.
func (b *Behavior) Command() command.Command { return b.cmd }

// Parameter returns the held parameter.
func (b *Behavior) Parameter() payload.Value { return b.parameter }

// SetCommand replaces the held command. The previous command's
// executability subscription is released first; when the new command
// notifies executability changes, Refresh becomes its handler and runs
// once immediately. Setting nil only releases: the enabled flag is left
// alone until a command arrives.
func (b *Behavior) SetCommand(cmd command.Command) {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	b.cmd = cmd
	if cmd == nil {
		return
	}
	if observable, ok := cmd.(command.Observable); ok {
		b.unsubscribe = observable.OnCanExecuteChanged(b.Refresh)
	}
	b.Refresh()
}

// SetParameter replaces the held parameter and refreshes, since
// executability may depend on it.
func (b *Behavior) SetParameter(v payload.Value) {
	b.parameter = v
	b.Refresh()
}

// Execute runs the held command. The effective parameter is override when
// non-nil, else the held parameter. A guarded command that vetoes the
// effective parameter is not executed. Without a command the call is a
// no-op, not an error. Command errors propagate unchanged.
func (b *Behavior) Execute(override payload.Value) (Outcome, error) {
	if b.cmd == nil {
		return OutcomeSkipped, nil
	}
	effective := b.parameter
	if !override.IsNil() {
		effective = override
	}
	if guarded, ok := b.cmd.(command.Guarded); ok && !guarded.CanExecute(effective) {
		return OutcomeBlocked, nil
	}
	if err := b.cmd.Execute(effective); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeExecuted, nil
}

// Refresh mirrors the command's executability onto the element: guarded
// commands are asked with the held parameter, unguarded commands count as
// always executable, and the no-command case follows the configured
// policy.
func (b *Behavior) Refresh() {
	if b.cmd == nil {
		if b.noCommand == ForceEnabledWhenUnset {
			b.element.SetEnabled(true)
		}
		return
	}
	if guarded, ok := b.cmd.(command.Guarded); ok {
		b.element.SetEnabled(guarded.CanExecute(b.parameter))
		return
	}
	b.element.SetEnabled(true)
}

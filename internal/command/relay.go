package command

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/tui-relay/internal/payload"
)

// ErrNilExecute indicates a relay constructed without an execute func.
var ErrNilExecute = errors.New("relay requires an execute func")

// ExecuteFunc runs the command's effect.
type ExecuteFunc func(param payload.Value) error

// GuardFunc reports whether the command may execute with param.
type GuardFunc func(param payload.Value) bool

// Relay is a Command assembled from funcs. A nil guard means always
// executable. Relay is Observable; call RaiseCanExecuteChanged after any
// state change that may flip the guard's answer.
type Relay struct {
	name    string
	execute ExecuteFunc
	guard   GuardFunc
	changed signal
}

// Option configures a Relay during construction.
type Option func(*Relay) error

// WithGuard sets the executability guard.
func WithGuard(guard GuardFunc) Option {
	return func(r *Relay) error {
		if guard == nil {
			return fmt.Errorf("relay %q: guard func cannot be nil", r.name)
		}
		r.guard = guard
		return nil
	}
}

// NewRelay builds a command named name around execute.
func NewRelay(name string, execute ExecuteFunc, opts ...Option) (*Relay, error) {
	if execute == nil {
		return nil, fmt.Errorf("relay %q: %w", name, ErrNilExecute)
	}
	r := &Relay{name: name, execute: execute}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the registry name the relay was built with.
func (r *Relay) Name() string { return r.name }

// Execute runs the command's effect with param.
func (r *Relay) Execute(param payload.Value) error {
	return r.execute(param)
}

// CanExecute consults the guard; without one the relay is always
// executable.
func (r *Relay) CanExecute(param payload.Value) bool {
	if r.guard == nil {
		return true
	}
	return r.guard(param)
}

// OnCanExecuteChanged registers fn to run whenever executability may have
// changed.
func (r *Relay) OnCanExecuteChanged(fn func()) func() {
	return r.changed.subscribe(fn)
}

// RaiseCanExecuteChanged notifies all registered handlers synchronously.
func (r *Relay) RaiseCanExecuteChanged() {
	r.changed.notify()
}

package bind

import (
	"errors"

	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/payload"
)

var (
	// ErrAlreadyAttached indicates a second Attach on an attached bridge.
	ErrAlreadyAttached = errors.New("bridge already attached")
	// ErrBridgeDetached indicates an Attach after Detach; detachment is
	// terminal, construct a new bridge instead.
	ErrBridgeDetached = errors.New("bridge detached")
)

// State is the bridge lifecycle position.
type State int

const (
	StateUnattached State = iota
	StateAttached
	StateDetached
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateAttached:
		return "attached"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// BridgeOption configures a Bridge during construction.
type BridgeOption func(*Bridge)

// WithCommand sets the initial configured command.
func WithCommand(cmd command.Command) BridgeOption {
	return func(br *Bridge) { br.command = cmd }
}

// WithParameter sets the initial configured parameter.
func WithParameter(v payload.Value) BridgeOption {
	return func(br *Bridge) { br.parameter = v }
}

// WithParameterPath sets the initial parameter path.
func WithParameterPath(path string) BridgeOption {
	return func(br *Bridge) { br.path = path }
}

// WithBehaviorOptions forwards options to the Behavior the bridge creates
// on attach.
func WithBehaviorOptions(opts ...BehaviorOption) BridgeOption {
	return func(br *Bridge) { br.behaviorOpts = append(br.behaviorOpts, opts...) }
}

// Bridge owns the declarative configuration of one trigger binding: the
// command, the static parameter, and the optional parameter path used to
// derive the parameter from the trigger payload instead. It creates
// exactly one Behavior when attached to an element and funnels every
// configuration change and every invocation through it.
//
// Lifecycle: Unattached → Attached → Detached, one way. Invoke is a safe
// no-op outside Attached.
type Bridge struct {
	command      command.Command
	parameter    payload.Value
	path         string
	behavior     *Behavior
	behaviorOpts []BehaviorOption
	state        State
}

// NewBridge constructs an unattached bridge.
func NewBridge(opts ...BridgeOption) *Bridge {
	br := &Bridge{}
	for _, opt := range opts {
		opt(br)
	}
	return br
}

// State returns the lifecycle position.
func (br *Bridge) State() State { return br.state }

// Command returns the configured command.
func (br *Bridge) Command() command.Command { return br.command }

// Parameter returns the configured static parameter.
func (br *Bridge) Parameter() payload.Value { return br.parameter }

// ParameterPath returns the configured path, empty when none.
func (br *Bridge) ParameterPath() string { return br.path }

// SetCommand stores cmd and, when a behavior exists and holds a different
// command, propagates it (triggering a refresh). Before attachment the
// value is only stored and pushed on Attach.
func (br *Bridge) SetCommand(cmd command.Command) {
	br.command = cmd
	if br.behavior != nil && br.behavior.Command() != cmd {
		br.behavior.SetCommand(cmd)
	}
}

// SetParameter stores v and propagates it to an existing behavior unless
// it already holds an equal value.
func (br *Bridge) SetParameter(v payload.Value) {
	br.parameter = v
	if br.behavior != nil && !br.behavior.Parameter().Equal(v) {
		br.behavior.SetParameter(v)
	}
}

// SetParameterPath stores the path; it is consulted on each Invoke and
// never touches the behavior.
func (br *Bridge) SetParameterPath(path string) {
	br.path = path
}

// Attach binds the bridge to element, creating its Behavior and pushing
// the configured command and parameter into it. Pushes are skipped when
// the behavior already holds the same value, so attaching with empty
// configuration leaves the element's enabled flag untouched.
func (br *Bridge) Attach(element Element) error {
	switch br.state {
	case StateAttached:
		return ErrAlreadyAttached
	case StateDetached:
		return ErrBridgeDetached
	}
	if element == nil {
		return ErrNilElement
	}
	behavior, err := NewBehavior(element, br.behaviorOpts...)
	if err != nil {
		return err
	}
	br.behavior = behavior
	br.state = StateAttached

	// Parameter first: the command push refreshes against it.
	if !behavior.Parameter().Equal(br.parameter) {
		behavior.SetParameter(br.parameter)
	}
	if behavior.Command() != br.command {
		behavior.SetCommand(br.command)
	}
	return nil
}

// Detach clears the configured command and parameter, releases the
// command's executability subscription through the behavior, and discards
// the behavior. Terminal; safe to call on a never-attached bridge.
func (br *Bridge) Detach() {
	if br.behavior != nil {
		br.behavior.SetCommand(nil)
	}
	br.command = nil
	br.parameter = payload.Nil()
	br.behavior = nil
	br.state = StateDetached
}

// Invoke handles one firing of the trigger. Outside Attached it is a safe
// no-op. When a parameter path is configured it is resolved against
// trigger on every call; resolution failure surfaces as the returned
// error and the command is not executed. Without a path the configured
// parameter is used as-is.
func (br *Bridge) Invoke(trigger payload.Value) (Outcome, error) {
	if br.behavior == nil {
		return OutcomeSkipped, nil
	}
	effective := br.parameter
	if br.path != "" {
		resolved, err := payload.Resolve(trigger, br.path)
		if err != nil {
			return OutcomeSkipped, err
		}
		effective = resolved
	}
	return br.behavior.Execute(effective)
}

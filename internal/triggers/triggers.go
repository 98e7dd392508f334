// Package triggers wires bubbletea key events into command bridges. Each
// KeyTrigger pairs a bubbles key.Binding with a bind.Bridge; the binding
// doubles as the bridge's element, so a command's executability directly
// controls whether the key matches and whether help shows it.
package triggers

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/payload"
)

// BindingElement adapts a bubbles key.Binding to bind.Element. Disabling
// the element makes the key stop matching and drop out of help views.
type BindingElement struct {
	binding *key.Binding
}

func (e *BindingElement) Enabled() bool { return e.binding.Enabled() }

func (e *BindingElement) SetEnabled(v bool) { e.binding.SetEnabled(v) }

// KeyTrigger is one key binding driving one bridge.
type KeyTrigger struct {
	name    string
	binding key.Binding
	bridge  *bind.Bridge
}

// NewKeyTrigger pairs binding with bridge. The trigger's name is the
// binding's help key when set, else its first key chord.
func NewKeyTrigger(binding key.Binding, bridge *bind.Bridge) *KeyTrigger {
	name := binding.Help().Key
	if name == "" && len(binding.Keys()) > 0 {
		name = binding.Keys()[0]
	}
	return &KeyTrigger{name: name, binding: binding, bridge: bridge}
}

// Name returns the trigger's display name.
func (t *KeyTrigger) Name() string { return t.name }

// Binding returns the current key binding, including its enabled state.
func (t *KeyTrigger) Binding() key.Binding { return t.binding }

// Bridge returns the trigger's bridge.
func (t *KeyTrigger) Bridge() *bind.Bridge { return t.bridge }

// Element returns the bind.Element view of the trigger's key binding.
func (t *KeyTrigger) Element() *BindingElement {
	return &BindingElement{binding: &t.binding}
}

// Firing is the result of one trigger matching one key event. Parameter
// is the effective parameter the command saw (or would have seen);
// Payload is the full event record the parameter path resolved against.
type Firing struct {
	Trigger   string
	Command   string
	Outcome   bind.Outcome
	Parameter payload.Value
	Payload   payload.Value
	Err       error
	At        time.Time
	Duration  time.Duration
}

type named interface {
	Name() string
}

func commandName(cmd command.Command) string {
	if cmd == nil {
		return ""
	}
	if n, ok := cmd.(named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", cmd)
}

package triggers

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/payload"
)

// Keymap is an ordered set of key triggers dispatching against the same
// event stream. It satisfies bubbles/help.KeyMap, so help views render
// straight from it and hide disabled keys.
type Keymap struct {
	triggers []*KeyTrigger
}

func NewKeymap(triggers ...*KeyTrigger) *Keymap {
	return &Keymap{triggers: triggers}
}

// Add appends a trigger.
func (k *Keymap) Add(trigger *KeyTrigger) {
	k.triggers = append(k.triggers, trigger)
}

// Triggers returns the triggers in dispatch order.
func (k *Keymap) Triggers() []*KeyTrigger { return k.triggers }

// Attach attaches every trigger's bridge to its key binding. Fails on the
// first bridge that refuses.
func (k *Keymap) Attach() error {
	for _, t := range k.triggers {
		if err := t.bridge.Attach(t.Element()); err != nil {
			return fmt.Errorf("attach trigger %q: %w", t.name, err)
		}
	}
	return nil
}

// Detach detaches every trigger's bridge. Terminal, like bridge detach.
func (k *Keymap) Detach() {
	for _, t := range k.triggers {
		t.bridge.Detach()
	}
}

// Dispatch runs msg against every trigger whose binding matches and
// returns one Firing per match. Disabled bindings never match. The event
// payload visible to parameter paths is the key description merged with
// ctx; ctx fields win on collision.
func (k *Keymap) Dispatch(msg tea.KeyMsg, ctx payload.Value) []Firing {
	var firings []Firing
	at := time.Now()
	base := eventPayload(msg, at)
	for _, t := range k.triggers {
		if !key.Matches(msg, t.binding) {
			continue
		}
		event := payload.MergeRecords(base, ctx)
		started := time.Now()
		outcome, err := t.bridge.Invoke(event)
		firings = append(firings, Firing{
			Trigger:   t.name,
			Command:   commandName(t.bridge.Command()),
			Outcome:   outcome,
			Parameter: effectiveParameter(t.bridge, event),
			Payload:   event,
			Err:       err,
			At:        at,
			Duration:  time.Since(started),
		})
	}
	return firings
}

// ShortHelp satisfies help.KeyMap.
func (k *Keymap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(k.triggers))
	for _, t := range k.triggers {
		bindings = append(bindings, t.binding)
	}
	return bindings
}

// FullHelp satisfies help.KeyMap.
func (k *Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// effectiveParameter replays the bridge's parameter choice for reporting.
// Resolution is pure over the immutable event record, so the replay always
// agrees with what Invoke used.
func effectiveParameter(br *bind.Bridge, event payload.Value) payload.Value {
	param := br.Parameter()
	if path := br.ParameterPath(); path != "" {
		if resolved, err := payload.Resolve(event, path); err == nil && !resolved.IsNil() {
			param = resolved
		}
	}
	return param
}

func eventPayload(msg tea.KeyMsg, at time.Time) payload.Value {
	return payload.NewRecord(map[string]payload.Value{
		"key": payload.NewRecord(map[string]payload.Value{
			"name":  payload.NewString(msg.String()),
			"runes": payload.NewString(string(msg.Runes)),
			"alt":   payload.NewBool(msg.Alt),
		}),
		"at": payload.NewTime(at),
	})
}

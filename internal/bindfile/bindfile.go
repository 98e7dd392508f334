// Package bindfile loads declarative key→command bindings from TOML and
// turns them into an attachable keymap.
//
// File shape:
//
//	[[binding]]
//	keys = ["c"]
//	command = "task.complete"
//	help = "complete selected task"
//	path = "task.id"
//
//	[[binding]]
//	keys = ["A"]
//	command = "task.add"
//	parameter = "quick note"
//
// Unknown keys anywhere in the file are rejected, as are bindings whose
// command is not registered, so a typo fails at load instead of silently
// never firing.
package bindfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"

	"github.com/cristianoliveira/tui-relay/internal/bind"
	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/payload"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

var (
	// ErrMissingKeys indicates a binding without key chords.
	ErrMissingKeys = errors.New("binding has no keys")
	// ErrMissingCommand indicates a binding without a command name.
	ErrMissingCommand = errors.New("binding has no command")
	// ErrDuplicateKey indicates a key chord bound by two bindings.
	ErrDuplicateKey = errors.New("key bound more than once")
)

// File is the decoded binding file.
type File struct {
	Bindings []Binding `mapstructure:"binding"`
}

// Binding is one declarative key→command entry. Parameter holds any TOML
// value and is converted with payload.Wrap; when Path is also set, the
// path wins on every invoke that resolves.
type Binding struct {
	Keys      []string `mapstructure:"keys"`
	Command   string   `mapstructure:"command"`
	Help      string   `mapstructure:"help"`
	Path      string   `mapstructure:"path"`
	Parameter any      `mapstructure:"parameter"`
}

// Parse decodes TOML data into a File. Decoding is strict: unused keys
// are errors.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("bindfile: parse toml: %w", err)
	}

	var file File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &file,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("bindfile: build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("bindfile: decode: %w", err)
	}
	return &file, nil
}

// Load reads and parses the binding file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every binding against the registry: keys present and
// unique across the file, command registered, path syntactically valid.
func Validate(file *File, reg *command.Registry) error {
	seen := map[string]int{}
	for i, b := range file.Bindings {
		label := bindingLabel(i, b)
		if len(b.Keys) == 0 {
			return fmt.Errorf("bindfile: %s: %w", label, ErrMissingKeys)
		}
		for _, chord := range b.Keys {
			if strings.TrimSpace(chord) == "" {
				return fmt.Errorf("bindfile: %s: empty key chord", label)
			}
			if prev, dup := seen[chord]; dup {
				return fmt.Errorf("bindfile: %s: key %q already bound by binding %d: %w", label, chord, prev, ErrDuplicateKey)
			}
			seen[chord] = i
		}
		if b.Command == "" {
			return fmt.Errorf("bindfile: %s: %w", label, ErrMissingCommand)
		}
		if _, err := reg.Lookup(b.Command); err != nil {
			return fmt.Errorf("bindfile: %s: %w", label, err)
		}
		if b.Path != "" {
			if err := payload.ValidatePath(b.Path); err != nil {
				return fmt.Errorf("bindfile: %s: %w", label, err)
			}
		}
	}
	return nil
}

// Build validates the file and constructs one key trigger per binding,
// wired to commands from the registry. The keymap is returned unattached.
func Build(file *File, reg *command.Registry) (*triggers.Keymap, error) {
	if err := Validate(file, reg); err != nil {
		return nil, err
	}

	keymap := triggers.NewKeymap()
	for _, b := range file.Bindings {
		cmd, err := reg.Lookup(b.Command)
		if err != nil {
			return nil, fmt.Errorf("bindfile: %w", err)
		}
		desc := b.Help
		if desc == "" {
			desc = b.Command
		}
		binding := key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Keys[0], desc),
		)
		opts := []bind.BridgeOption{bind.WithCommand(cmd)}
		if b.Path != "" {
			opts = append(opts, bind.WithParameterPath(b.Path))
		}
		if b.Parameter != nil {
			opts = append(opts, bind.WithParameter(payload.Wrap(b.Parameter)))
		}
		keymap.Add(triggers.NewKeyTrigger(binding, bind.NewBridge(opts...)))
	}
	return keymap, nil
}

func bindingLabel(i int, b Binding) string {
	if len(b.Keys) > 0 {
		return fmt.Sprintf("binding %d (%s)", i, strings.Join(b.Keys, "/"))
	}
	return fmt.Sprintf("binding %d", i)
}

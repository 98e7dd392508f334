package command

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicateCommand indicates a name registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrUnknownCommand indicates a lookup for a name never registered.
	ErrUnknownCommand = errors.New("unknown command")
)

// invalidator is what InvalidateAll drives; *Relay satisfies it.
type invalidator interface {
	RaiseCanExecuteChanged()
}

// Registry maps names to commands so declarative configuration (binding
// files) can reference them.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd under name. Empty names, nil commands, and duplicate
// registrations are errors.
func (r *Registry) Register(name string, cmd Command) error {
	if name == "" {
		return fmt.Errorf("registry: command name cannot be empty")
	}
	if cmd == nil {
		return fmt.Errorf("registry: command %q cannot be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("registry: %q: %w", name, ErrDuplicateCommand)
	}
	r.commands[name] = cmd
	return nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", name, ErrUnknownCommand)
	}
	return cmd, nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InvalidateAll raises the executability-changed notification on every
// registered command that supports it. Call after domain mutations that
// may flip guards across many commands at once.
func (r *Registry) InvalidateAll() {
	r.mu.RLock()
	targets := make([]invalidator, 0, len(r.commands))
	for _, cmd := range r.commands {
		if inv, ok := cmd.(invalidator); ok {
			targets = append(targets, inv)
		}
	}
	r.mu.RUnlock()

	for _, inv := range targets {
		inv.RaiseCanExecuteChanged()
	}
}

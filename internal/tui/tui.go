// Package tui implements the demo task board: a bubbletea program whose
// key bindings are declarative trigger→command bridges. All board
// mutations flow through the command registry, so guard changes show up
// immediately as enabled or disabled keys, dimmed action buttons, and
// entries missing from the help view.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/errors"
	"github.com/cristianoliveira/tui-relay/internal/formatter"
	"github.com/cristianoliveira/tui-relay/internal/settings"
	"github.com/cristianoliveira/tui-relay/internal/tasks"
	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

const (
	defaultWidth        = 80
	defaultHeight       = 24
	journalPanelHeight  = 8
	journalPanelEntries = 50
	statusClearDuration = 5 * time.Second
)

// Recorder persists trigger firings. *journal.Store satisfies it; a nil
// recorder disables journaling.
type Recorder interface {
	Record(firing triggers.Firing) error
}

// Options wires the board's collaborators into a Model.
type Options struct {
	Store    *tasks.Store
	Registry *command.Registry
	Keymap   *triggers.Keymap
	Recorder Recorder
	Settings settings.Settings
	// RunHooks runs post-invoke hooks for one firing; nil disables hooks.
	RunHooks func(firing triggers.Firing) error
}

// Model is the bubbletea model for the demo board.
type Model struct {
	store    *tasks.Store
	registry *command.Registry
	keymap   *triggers.Keymap
	recorder Recorder
	runHooks func(firing triggers.Firing) error

	errorHandler      *errors.TUIHandler
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool

	input     textinput.Model
	inputMode bool

	journalPanel viewport.Model
	journalLines []string
	presets      formatter.PresetRegistry
	engine       formatter.TemplateEngine

	helpView help.Model

	prefs    settings.Settings
	showDone bool

	styles styles
	width  int
	height int

	detached bool
}

// NewModel builds the board model and attaches the keymap, so every
// binding's enabled state reflects its command's guard from the first
// frame.
func NewModel(opts Options) (*Model, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("tui: store cannot be nil")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("tui: registry cannot be nil")
	}
	if opts.Keymap == nil {
		return nil, fmt.Errorf("tui: keymap cannot be nil")
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "task title"
	input.CharLimit = 120

	m := &Model{
		store:        opts.Store,
		registry:     opts.Registry,
		keymap:       opts.Keymap,
		recorder:     opts.Recorder,
		runHooks:     opts.RunHooks,
		input:        input,
		journalPanel: viewport.New(defaultWidth, journalPanelHeight),
		presets:      formatter.NewPresetRegistry(),
		engine:       formatter.NewTemplateEngine(),
		helpView:     help.New(),
		prefs:        opts.Settings,
		showDone:     opts.Settings.ShowDone,
		styles:       newStyles(opts.Settings.Theme),
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	if err := m.keymap.Attach(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return m, nil
}

// ErrorHandler exposes the board's message sink; collaborators outside
// the update loop report through it.
func (m *Model) ErrorHandler() *errors.TUIHandler { return m.errorHandler }

// Init is part of tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

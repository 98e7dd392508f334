package formatter

import "fmt"

// Preset represents a template preset with name, template string, and description.
type Preset struct {
	Name        string
	Template    string
	Description string
}

// PresetRegistry manages template presets.
type PresetRegistry interface {
	// Get returns a preset by name.
	Get(name string) (*Preset, error)

	// List returns all available presets.
	List() []Preset

	// Register adds a new preset.
	Register(preset Preset) error
}

// presetRegistry implements PresetRegistry interface.
type presetRegistry struct {
	presets map[string]Preset
	order   []string // To maintain order
}

// NewPresetRegistry creates a new preset registry with all default presets.
func NewPresetRegistry() PresetRegistry {
	registry := &presetRegistry{
		presets: make(map[string]Preset),
		order:   []string{},
	}
	registry.registerDefaults()
	return registry
}

// registerDefaults registers the default presets.
func (pr *presetRegistry) registerDefaults() {
	presets := []Preset{
		{
			Name:        "compact",
			Template:    "${fired-at}  ${trigger}  ${command}  [${outcome}]",
			Description: "One line per invocation with trigger, command and outcome",
		},
		{
			Name:        "detailed",
			Template:    "${fired-at}  ${trigger}  ${command}  [${outcome}]  param=${parameter}  error=${error}  (${duration})",
			Description: "Full invocation record including parameter, error and timing",
		},
		{
			Name:        "csv",
			Template:    "${id},${fired-at-unix},${trigger},${command},${outcome},${duration-us}",
			Description: "Comma-separated values for spreadsheets and scripts",
		},
		{
			Name:        "trace",
			Template:    "${fired-at}  ${trigger}  payload=${payload}",
			Description: "Raw trigger payloads for debugging parameter paths",
		},
	}

	for _, preset := range presets {
		pr.presets[preset.Name] = preset
		pr.order = append(pr.order, preset.Name)
	}
}

// Get returns a preset by name, or an error if not found.
func (pr *presetRegistry) Get(name string) (*Preset, error) {
	preset, ok := pr.presets[name]
	if !ok {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	return &preset, nil
}

// List returns all available presets in registration order.
func (pr *presetRegistry) List() []Preset {
	result := make([]Preset, 0, len(pr.order))
	for _, name := range pr.order {
		if preset, ok := pr.presets[name]; ok {
			result = append(result, preset)
		}
	}
	return result
}

// Register adds a new preset or overwrites an existing one.
func (pr *presetRegistry) Register(preset Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if preset.Template == "" {
		return fmt.Errorf("preset template cannot be empty")
	}

	if _, exists := pr.presets[preset.Name]; !exists {
		pr.order = append(pr.order, preset.Name)
	}
	pr.presets[preset.Name] = preset
	return nil
}

// FormatEntry renders one journal entry through a template. The template may
// be a preset name or a literal template string; preset names win.
func FormatEntry(registry PresetRegistry, engine TemplateEngine, template string, ctx VariableContext) (string, error) {
	if preset, err := registry.Get(template); err == nil {
		template = preset.Template
	}
	if err := engine.Validate(template); err != nil {
		return "", err
	}
	return engine.Substitute(template, ctx)
}

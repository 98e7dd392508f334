package formatter

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/tui-relay/internal/journal"
)

// firedAtLayout is the display format for the fired-at variable.
const firedAtLayout = "2006-01-02 15:04:05"

// VariableContext contains all data needed for template variable resolution.
type VariableContext struct {
	ID        string
	FiredAt   time.Time
	Trigger   string
	Command   string
	Outcome   string
	Parameter string
	Payload   string
	Error     string
	Duration  time.Duration
}

// ContextFromEntry builds a variable context from a journal entry.
func ContextFromEntry(entry journal.Entry) VariableContext {
	return VariableContext{
		ID:        entry.ID,
		FiredAt:   entry.FiredAt,
		Trigger:   entry.Trigger,
		Command:   entry.Command,
		Outcome:   entry.Outcome,
		Parameter: string(entry.ParameterJSON),
		Payload:   string(entry.PayloadJSON),
		Error:     entry.Error,
		Duration:  entry.Duration,
	}
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	// Resolve returns the string value for a given variable name and context.
	Resolve(varName string, ctx VariableContext) (string, error)
}

// variableResolver implements VariableResolver interface.
type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Resolve returns the string value for a variable from the context.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	switch varName {
	case "id":
		return ctx.ID, nil

	case "fired-at":
		return ctx.FiredAt.Local().Format(firedAtLayout), nil

	case "fired-at-unix":
		return fmt.Sprintf("%d", ctx.FiredAt.Unix()), nil

	case "trigger":
		return ctx.Trigger, nil

	case "command":
		return ctx.Command, nil

	case "outcome":
		return ctx.Outcome, nil

	case "parameter":
		return ctx.Parameter, nil

	case "payload":
		return ctx.Payload, nil

	case "error":
		return ctx.Error, nil

	case "duration":
		return ctx.Duration.String(), nil

	case "duration-us":
		return fmt.Sprintf("%d", ctx.Duration.Microseconds()), nil

	case "ok":
		return boolToString(ctx.Outcome == "executed"), nil

	default:
		return "", fmt.Errorf("unknown variable: %s", varName)
	}
}

// boolToString converts a boolean to the string "true" or "false".
func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

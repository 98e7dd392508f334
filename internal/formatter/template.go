// Package formatter provides template parsing, variable resolution, and
// preset management for formatting journal entries with customizable
// templates.
package formatter

import (
	"fmt"
	"regexp"
	"strings"
)

// TemplateEngine provides template parsing and variable substitution.
type TemplateEngine interface {
	// Parse returns a list of variables found in the template.
	Parse(template string) ([]string, error)

	// Substitute replaces variables in the template with values from the context.
	Substitute(template string, ctx VariableContext) (string, error)

	// Validate checks that every ${...} reference in the template is well formed.
	Validate(template string) error
}

// templateEngine implements TemplateEngine interface.
type templateEngine struct {
	variablePattern *regexp.Regexp
}

// NewTemplateEngine creates a new template engine instance.
func NewTemplateEngine() TemplateEngine {
	return &templateEngine{
		variablePattern: regexp.MustCompile(`\$\{([a-z0-9-]+)\}`),
	}
}

// Parse identifies all variables in a template string using ${variable-name}
// syntax. Returns a list of variable names found, without duplicates.
func (te *templateEngine) Parse(template string) ([]string, error) {
	if template == "" {
		return []string{}, nil
	}

	matches := te.variablePattern.FindAllStringSubmatch(template, -1)
	if matches == nil {
		return []string{}, nil
	}

	seen := make(map[string]bool)
	var variables []string
	for _, match := range matches {
		if len(match) > 1 {
			varName := match[1]
			if !seen[varName] {
				variables = append(variables, varName)
				seen[varName] = true
			}
		}
	}

	return variables, nil
}

// Substitute replaces all variables in the template with values from the
// context. Unknown variables are an error.
func (te *templateEngine) Substitute(template string, ctx VariableContext) (string, error) {
	if template == "" {
		return "", nil
	}

	resolver := NewVariableResolver()
	result := template

	matches := te.variablePattern.FindAllStringSubmatch(template, -1)
	if matches == nil {
		return result, nil
	}

	for _, match := range matches {
		if len(match) > 1 {
			value, err := resolver.Resolve(match[1], ctx)
			if err != nil {
				return "", err
			}
			result = strings.ReplaceAll(result, match[0], value)
		}
	}

	return result, nil
}

// Validate checks template syntax. A "${" that does not open a well-formed
// variable reference is rejected.
func (te *templateEngine) Validate(template string) error {
	stripped := te.variablePattern.ReplaceAllString(template, "")
	if idx := strings.Index(stripped, "${"); idx >= 0 {
		return fmt.Errorf("malformed variable reference near %q", truncateAt(stripped[idx:], 20))
	}
	return nil
}

func truncateAt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Where: cli/internal/workflows/prompt.go
// What: Interactive prompt flow for template choice and project name.
// Why: Keep validation at the prompt boundary so rejected names never reach disk.
package workflows

import (
	"strings"

	"github.com/poruru/scaffold/cli/internal/domain/project"
	"github.com/poruru/scaffold/cli/internal/infra/interaction"
	"github.com/poruru/scaffold/cli/internal/ports"
)

const (
	selectTemplateTitle = "Select a template:"
	projectNameTitle    = "Enter the project name:"
)

// PromptFlow implements ports.Prompts on top of an interaction.Prompter.
type PromptFlow struct {
	Prompter  interaction.Prompter
	Templates ports.TemplateSource
	Validator project.NameValidator
}

// NewPromptFlow constructs a PromptFlow validating names against workDir.
func NewPromptFlow(prompter interaction.Prompter, templates ports.TemplateSource, workDir string) PromptFlow {
	return PromptFlow{
		Prompter:  prompter,
		Templates: templates,
		Validator: project.NameValidator{WorkDir: workDir},
	}
}

// SelectTemplate shows every template and returns the chosen id.
func (p PromptFlow) SelectTemplate() (string, error) {
	descriptors := p.Templates.All()
	options := make([]interaction.SelectOption, 0, len(descriptors))
	for _, d := range descriptors {
		options = append(options, interaction.SelectOption{Label: d.Label(), Value: d.ID})
	}
	return p.Prompter.SelectValue(selectTemplateTitle, options)
}

// ReadProjectName asks until the name is non-empty and unused.
func (p PromptFlow) ReadProjectName() (string, error) {
	name, err := p.Prompter.Input(projectNameTitle, func(value string) error {
		return p.Validator.Validate(strings.TrimSpace(value))
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

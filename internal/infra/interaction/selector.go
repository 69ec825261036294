// Where: cli/internal/infra/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based template selection and validated text input.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/poruru/scaffold/cli/internal/domain/project"
)

var runInputPrompt = func(title string, validate func(string) error, input *string) error {
	field := huh.NewInput().
		Title(title).
		Value(input)
	if validate != nil {
		field.Validate(validate)
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, validate func(string) error) (string, error) {
	var input string
	if err := runInputPrompt(title, validate, &input); err != nil {
		return "", wrapPromptError("prompt input", err)
	}
	// huh validates on submit; check again so a runner that skips
	// validation cannot hand back a rejected value.
	if validate != nil {
		if err := validate(input); err != nil {
			return "", fmt.Errorf("prompt input: %w", err)
		}
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("prompt select value: no options")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", wrapPromptError("prompt select value", err)
	}
	return selected, nil
}

func wrapPromptError(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%s: %w", op, project.ErrCancelled)
	}
	return fmt.Errorf("%s: %w", op, err)
}

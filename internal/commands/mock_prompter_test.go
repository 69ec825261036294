package commands

import (
	"github.com/poruru/scaffold/cli/internal/infra/interaction"
)

type mockPrompter struct {
	inputFn  func(title string, validate func(string) error) (string, error)
	selectFn func(title string, options []interaction.SelectOption) (string, error)
}

func (m *mockPrompter) Input(title string, validate func(string) error) (string, error) {
	if m.inputFn != nil {
		return m.inputFn(title, validate)
	}
	return "", nil
}

func (m *mockPrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	if m.selectFn != nil {
		return m.selectFn(title, options)
	}
	if len(options) == 0 {
		return "", nil
	}
	return options[0].Value, nil
}

// Where: cli/cmd/scaffold/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/scaffold/cli/internal/commands"
	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/interaction"
	"github.com/poruru/scaffold/cli/internal/infra/runner"
)

var (
	getwd        = os.Getwd
	loadRegistry = template.DefaultRegistry
)

// buildDependencies constructs the runtime dependencies of the CLI.
// The registry is loaded once here so invalid embedded data fails at startup.
func buildDependencies() (commands.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return commands.Dependencies{}, err
	}

	registry, err := loadRegistry()
	if err != nil {
		return commands.Dependencies{}, err
	}

	return commands.Dependencies{
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		WorkDir:   workDir,
		Prompter:  interaction.HuhPrompter{},
		Templates: registry,
		Runner:    runner.ExecRunner{Out: os.Stdout, ErrOut: os.Stderr},
	}, nil
}

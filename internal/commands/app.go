// Where: cli/internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/poruru/scaffold/cli/internal/config"
	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/interaction"
	"github.com/poruru/scaffold/cli/internal/infra/pkgmanager"
	"github.com/poruru/scaffold/cli/internal/infra/runner"
	"github.com/poruru/scaffold/cli/internal/infra/templategen"
	"github.com/poruru/scaffold/cli/internal/infra/ui"
	"github.com/poruru/scaffold/cli/internal/meta"
	"github.com/poruru/scaffold/cli/internal/ports"
	"github.com/poruru/scaffold/cli/internal/version"
	"github.com/poruru/scaffold/cli/internal/workflows"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real terminal, registry, and process runner.
type Dependencies struct {
	Out     io.Writer
	ErrOut  io.Writer
	WorkDir string
	// Prompter defaults to interaction.HuhPrompter.
	Prompter interaction.Prompter
	// RequireTerminal defaults to checking os.Stdin.
	RequireTerminal func() error
	Templates       ports.TemplateSource
	Runner          runner.CommandRunner
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`
}

var notifyContext = func(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Run is the main entry point for CLI command execution.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	cli := CLI{}
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(meta.Description),
		kong.Vars{"version": version.GetVersion()},
		kong.Writers(out, errOut),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return exitWithError(errOut, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return exitWithError(errOut, err)
	}
	// --help and --version print and request an exit.
	if exitCode >= 0 {
		return exitCode
	}

	return runScaffold(deps, out, errOut)
}

func runScaffold(deps Dependencies, out, errOut io.Writer) int {
	workDir := deps.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return exitWithError(errOut, err)
		}
		workDir = wd
	}

	loadDotEnv(workDir, errOut)

	settings, err := config.Resolve()
	if err != nil {
		return exitWithError(errOut, err)
	}

	templates := deps.Templates
	if templates == nil {
		registry, err := template.DefaultRegistry()
		if err != nil {
			return exitWithError(errOut, err)
		}
		templates = registry
	}

	requireTerminal := deps.RequireTerminal
	if requireTerminal == nil {
		requireTerminal = func() error { return interaction.RequireTerminal(os.Stdin) }
	}
	if err := requireTerminal(); err != nil {
		return exitWithError(errOut, err)
	}

	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.HuhPrompter{}
	}
	cmdRunner := deps.Runner
	if cmdRunner == nil {
		cmdRunner = runner.ExecRunner{Out: out, ErrOut: errOut}
	}

	console := ui.NewConsoleUI(out, settings.Emoji)
	workflow := workflows.NewScaffoldWorkflow(
		templates,
		workflows.NewPromptFlow(prompter, templates, workDir),
		templategen.NewMaterializer(workDir, template.NewRenderer(), console),
		installerFactory(cmdRunner),
		console,
	)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if _, err := workflow.Run(ctx, workflows.ScaffoldRequest{WorkDir: workDir, Settings: settings}); err != nil {
		return exitWithError(errOut, err)
	}
	return 0
}

func installerFactory(r runner.CommandRunner) ports.InstallerFactory {
	return func(executable string, continueOnError bool) ports.DependencyInstaller {
		installer := pkgmanager.New(r, executable)
		installer.ContinueOnError = continueOnError
		return installer
	}
}

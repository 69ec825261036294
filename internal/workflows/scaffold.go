// Where: cli/internal/workflows/scaffold.go
// What: Scaffold workflow state machine.
// Why: Run prompt, materialize, and install strictly in order with one failure exit.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/scaffold/cli/internal/config"
	"github.com/poruru/scaffold/cli/internal/domain/project"
	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/pkgmanager"
	"github.com/poruru/scaffold/cli/internal/infra/ui"
	"github.com/poruru/scaffold/cli/internal/ports"
)

// State is a step of the scaffold run.
type State string

const (
	StateIdle                  State = "idle"
	StateTemplateSelected      State = "template-selected"
	StateNameValidated         State = "name-validated"
	StateRootCreated           State = "root-created"
	StateTemplateApplied       State = "template-applied"
	StateDependenciesInstalled State = "dependencies-installed"
	StateComplete              State = "complete"
	StateFailed                State = "failed"
)

var stateOrder = []State{
	StateIdle,
	StateTemplateSelected,
	StateNameValidated,
	StateRootCreated,
	StateTemplateApplied,
	StateDependenciesInstalled,
	StateComplete,
}

// next returns the only forward transition from s.
func next(s State) (State, bool) {
	for i, candidate := range stateOrder[:len(stateOrder)-1] {
		if candidate == s {
			return stateOrder[i+1], true
		}
	}
	return "", false
}

// ScaffoldRequest captures inputs that are not gathered interactively.
type ScaffoldRequest struct {
	WorkDir  string
	Settings config.Settings
}

// ScaffoldResult reports how far the run got.
type ScaffoldResult struct {
	Request     project.ScaffoldRequest
	ProjectRoot string
	State       State
	// FailedAt is the last state reached before Failed.
	FailedAt State
	// Warnings holds installer failures tolerated by the warn policy.
	Warnings []error
}

// ScaffoldWorkflow runs one scaffold session.
type ScaffoldWorkflow struct {
	Templates     ports.TemplateSource
	Prompts       ports.Prompts
	Materializer  ports.ProjectMaterializer
	NewInstaller  ports.InstallerFactory
	UserInterface ui.UserInterface
	// OnTransition observes every state change, including into Failed.
	OnTransition func(from, to State)
}

// NewScaffoldWorkflow constructs a ScaffoldWorkflow.
func NewScaffoldWorkflow(templates ports.TemplateSource, prompts ports.Prompts, materializer ports.ProjectMaterializer,
	newInstaller ports.InstallerFactory, out ui.UserInterface,
) ScaffoldWorkflow {
	return ScaffoldWorkflow{
		Templates:     templates,
		Prompts:       prompts,
		Materializer:  materializer,
		NewInstaller:  newInstaller,
		UserInterface: out,
	}
}

type run struct {
	w      ScaffoldWorkflow
	result ScaffoldResult
}

func (r *run) advance(to State) {
	from := r.result.State
	if want, ok := next(from); !ok || want != to {
		panic(fmt.Sprintf("scaffold: illegal transition %s -> %s", from, to))
	}
	r.result.State = to
	if r.w.OnTransition != nil {
		r.w.OnTransition(from, to)
	}
}

func (r *run) fail(err error) (ScaffoldResult, error) {
	from := r.result.State
	r.result.FailedAt = from
	r.result.State = StateFailed
	if r.w.OnTransition != nil {
		r.w.OnTransition(from, StateFailed)
	}
	return r.result, err
}

// Run executes the workflow. Partially created trees are left on disk when
// a later step fails.
func (w ScaffoldWorkflow) Run(ctx context.Context, req ScaffoldRequest) (ScaffoldResult, error) {
	r := &run{w: w, result: ScaffoldResult{State: StateIdle}}

	templateID, err := w.Prompts.SelectTemplate()
	if err != nil {
		return r.fail(err)
	}
	descriptor, err := w.Templates.Lookup(templateID)
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateTemplateSelected)

	name, err := w.Prompts.ReadProjectName()
	if err != nil {
		return r.fail(err)
	}
	request, err := project.NewScaffoldRequest(descriptor.ID, name, req.WorkDir)
	if err != nil {
		return r.fail(err)
	}
	r.result.Request = request
	r.advance(StateNameValidated)

	if err := ctx.Err(); err != nil {
		return r.fail(err)
	}
	root, err := w.Materializer.CreateProjectRoot(name)
	if err != nil {
		return r.fail(err)
	}
	r.result.ProjectRoot = root
	r.advance(StateRootCreated)

	if err := w.Materializer.ApplyTemplate(descriptor, root); err != nil {
		return r.fail(err)
	}
	r.advance(StateTemplateApplied)

	warnings, err := w.install(ctx, descriptor, root, req.Settings)
	r.result.Warnings = warnings
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateDependenciesInstalled)

	w.banner("Project setup complete!")
	w.summary(descriptor, request, req.Settings)
	r.advance(StateComplete)
	return r.result, nil
}

// install runs the package-manager steps. Under the warn policy a failed
// step is reported and the next step still runs, except when the
// executable is missing or the context is done.
func (w ScaffoldWorkflow) install(ctx context.Context, d template.Descriptor, root string, settings config.Settings) ([]error, error) {
	executable := packageManager(d, settings)
	tolerate := settings.InstallFailure != config.InstallFailureFail
	installer := w.NewInstaller(executable, tolerate)

	steps := []func() error{
		installer.CheckAvailable,
		func() error { return installer.InitManifest(ctx, root) },
		func() error { return installer.InstallDependencies(ctx, root, d.Dependencies, d.DevDependencies) },
		func() error { return installer.PatchManifest(root, manifestPatch(d)) },
	}

	var warnings []error
	for i, step := range steps {
		err := step()
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return warnings, errors.Join(ctxErr, err)
		}
		if !tolerate || !project.IsExternalToolError(err) {
			return warnings, err
		}
		for _, failure := range stepFailures(err) {
			warnings = append(warnings, failure)
			w.warn(failure.Error())
		}
		if i == 0 {
			w.warn(fmt.Sprintf("Skipping dependency installation; install %s and run it in %s", executable, root))
			return warnings, nil
		}
	}

	if len(warnings) == 0 {
		w.success(fmt.Sprintf("Initialized %s project and installed dependencies.", baseName(executable)))
	}
	return warnings, nil
}

// stepFailures splits an errors.Join result so each failed command is
// reported on its own line.
func stepFailures(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// summary lists how to run each declared script in the new project.
func (w ScaffoldWorkflow) summary(d template.Descriptor, req project.ScaffoldRequest, settings config.Settings) {
	if w.UserInterface == nil {
		return
	}
	pm := baseName(packageManager(d, settings))
	rows := []ui.KeyValue{{Key: "Path", Value: req.TargetDirectory}}
	for _, s := range d.Scripts {
		rows = append(rows, ui.KeyValue{Key: s.Name, Value: fmt.Sprintf("cd %s && %s run %s", req.ProjectName, pm, s.Name)})
	}
	w.UserInterface.Block("📁", "Next steps", rows)
}

func packageManager(d template.Descriptor, settings config.Settings) string {
	if settings.PackageManager != "" {
		return settings.PackageManager
	}
	return d.PackageManager
}

func manifestPatch(d template.Descriptor) pkgmanager.ManifestPatch {
	patch := pkgmanager.ManifestPatch{}
	for _, s := range d.Scripts {
		patch.Scripts = append(patch.Scripts, pkgmanager.Entry{Key: s.Name, Value: s.Command})
	}
	for _, f := range d.ManifestFields {
		patch.Fields = append(patch.Fields, pkgmanager.Entry{Key: f.Key, Value: f.Value})
	}
	return patch
}

func baseName(executable string) string {
	if i := strings.LastIndexAny(executable, `/\`); i >= 0 {
		return executable[i+1:]
	}
	return executable
}

func (w ScaffoldWorkflow) success(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Success(msg)
	}
}

func (w ScaffoldWorkflow) warn(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Warn(msg)
	}
}

func (w ScaffoldWorkflow) banner(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Banner(msg)
	}
}

// Where: cli/internal/workflows/workflow_helpers_test.go
// What: Test helpers and stub ports for workflow unit tests.
// Why: Keep workflow tests focused on orchestration behavior without a terminal or npm.
package workflows

import (
	"context"
	"errors"

	"github.com/poruru/scaffold/cli/internal/domain/project"
	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/interaction"
	"github.com/poruru/scaffold/cli/internal/infra/pkgmanager"
	"github.com/poruru/scaffold/cli/internal/infra/ui"
)

type testBlock struct {
	title string
	rows  []ui.KeyValue
}

type testUI struct {
	blocks    []testBlock
	steps     []string
	warns     []string
	successes []string
	banners   []string
}

func (u *testUI) Step(msg string) {
	u.steps = append(u.steps, msg)
}

func (u *testUI) Warn(msg string) {
	u.warns = append(u.warns, msg)
}

func (u *testUI) Success(msg string) {
	u.successes = append(u.successes, msg)
}

func (u *testUI) Banner(msg string) {
	u.banners = append(u.banners, msg)
}

func (u *testUI) Block(_, title string, rows []ui.KeyValue) {
	u.blocks = append(u.blocks, testBlock{title: title, rows: rows})
}

type stubTemplates struct {
	descriptors []template.Descriptor
}

func (s stubTemplates) All() []template.Descriptor {
	return s.descriptors
}

func (s stubTemplates) Lookup(id string) (template.Descriptor, error) {
	for _, d := range s.descriptors {
		if d.ID == id {
			return d, nil
		}
	}
	return template.Descriptor{}, &project.UnknownTemplateError{ID: id}
}

type stubPrompts struct {
	templateID string
	name       string
	selectErr  error
	nameErr    error
	calls      []string
}

func (s *stubPrompts) SelectTemplate() (string, error) {
	s.calls = append(s.calls, "select")
	return s.templateID, s.selectErr
}

func (s *stubPrompts) ReadProjectName() (string, error) {
	s.calls = append(s.calls, "name")
	return s.name, s.nameErr
}

type recordMaterializer struct {
	roots      []string
	applied    []string
	rootErr    error
	applyErr   error
	rootPrefix string
}

func (r *recordMaterializer) CreateProjectRoot(name string) (string, error) {
	r.roots = append(r.roots, name)
	if r.rootErr != nil {
		return "", r.rootErr
	}
	return r.rootPrefix + name, nil
}

func (r *recordMaterializer) ApplyTemplate(d template.Descriptor, root string) error {
	r.applied = append(r.applied, d.ID+"@"+root)
	return r.applyErr
}

type recordInstaller struct {
	executable      string
	continueOnError bool
	calls           []string
	patches         []pkgmanager.ManifestPatch
	failOn          map[string]error
}

func (r *recordInstaller) record(step string) error {
	r.calls = append(r.calls, step)
	return r.failOn[step]
}

func (r *recordInstaller) CheckAvailable() error {
	return r.record("check")
}

func (r *recordInstaller) InitManifest(_ context.Context, _ string) error {
	return r.record("init")
}

func (r *recordInstaller) InstallDependencies(_ context.Context, _ string, _, _ []string) error {
	return r.record("install")
}

func (r *recordInstaller) PatchManifest(_ string, patch pkgmanager.ManifestPatch) error {
	r.patches = append(r.patches, patch)
	return r.record("patch")
}

func toolError(step string) error {
	return &project.ExternalToolError{Step: step, Command: "npm " + step, Err: errors.New("exit status 1")}
}

type stubPrompter struct {
	inputs    []string
	selected  string
	options   []interaction.SelectOption
	rejected  []error
	inputErr  error
	selectErr error
}

// Input feeds each queued value to validate and returns the first accepted one.
func (s *stubPrompter) Input(_ string, validate func(string) error) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	for _, value := range s.inputs {
		if err := validate(value); err != nil {
			s.rejected = append(s.rejected, err)
			continue
		}
		return value, nil
	}
	return "", project.ErrCancelled
}

func (s *stubPrompter) SelectValue(_ string, options []interaction.SelectOption) (string, error) {
	s.options = options
	return s.selected, s.selectErr
}

func nodeDescriptor() template.Descriptor {
	return template.Descriptor{
		ID:              "nodejs",
		DisplayName:     "Node.js",
		Description:     "A basic Node.js project with Express",
		PackageManager:  "npm",
		Directories:     template.StandardDirectories(),
		Files:           []template.FileSpec{{Path: "index.js", Source: "nodejs/index.js.tmpl"}},
		Dependencies:    []string{"express"},
		DevDependencies: []string{"nodemon"},
		Scripts: []template.Script{
			{Name: "dev", Command: "nodemon index.js"},
			{Name: "start", Command: "node index.js"},
		},
		ManifestFields: []template.ManifestField{{Key: "type", Value: "module"}},
	}
}

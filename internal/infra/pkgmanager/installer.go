// Where: cli/internal/infra/pkgmanager/installer.go
// What: Package-manager invocations for a freshly materialized project.
// Why: Return every failure as a typed result so the caller owns the policy.
package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/scaffold/cli/internal/domain/project"
	"github.com/poruru/scaffold/cli/internal/infra/fileops"
	"github.com/poruru/scaffold/cli/internal/infra/runner"
)

// ManifestFile is the manifest written by `<pm> init`.
const ManifestFile = "package.json"

const (
	StepLocate  = "locate package manager"
	StepInit    = "initialize manifest"
	StepInstall = "install dependencies"
	StepDev     = "install dev dependencies"
	StepPatch   = "patch manifest"
)

// Installer shells out to an npm-compatible package manager.
type Installer struct {
	Runner     runner.CommandRunner
	Executable string
	// ContinueOnError makes InstallDependencies attempt the dev install
	// even when the runtime install failed.
	ContinueOnError bool
}

// New returns an Installer for executable (for example "npm").
func New(r runner.CommandRunner, executable string) Installer {
	return Installer{Runner: r, Executable: executable}
}

// CheckAvailable verifies the executable is on PATH.
func (i Installer) CheckAvailable() error {
	if _, err := i.Runner.LookPath(i.Executable); err != nil {
		return &project.ExternalToolError{Step: StepLocate, Command: i.Executable, Err: err}
	}
	return nil
}

// InitManifest runs `<pm> init -y` in root.
func (i Installer) InitManifest(ctx context.Context, root string) error {
	return i.run(ctx, StepInit, root, "init", "-y")
}

// InstallDependencies runs one install for deps and one, with the dev flag,
// for devDeps. Empty lists are skipped.
func (i Installer) InstallDependencies(ctx context.Context, root string, deps, devDeps []string) error {
	var errs []error
	if len(deps) > 0 {
		args := append([]string{"install"}, deps...)
		if err := i.run(ctx, StepInstall, root, args...); err != nil {
			if !i.ContinueOnError {
				return err
			}
			errs = append(errs, err)
		}
	}
	if len(devDeps) > 0 {
		args := append([]string{"install"}, devDeps...)
		args = append(args, "-D")
		if err := i.run(ctx, StepDev, root, args...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PatchManifestScripts merges scripts into the manifest's "scripts" object.
func (i Installer) PatchManifestScripts(root string, scripts []Entry) error {
	return i.PatchManifest(root, ManifestPatch{Scripts: scripts})
}

// PatchManifest merges patch into root/package.json. Fields not named by
// the patch keep their order and values.
func (i Installer) PatchManifest(root string, patch ManifestPatch) error {
	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return &project.ExternalToolError{Step: StepPatch, Err: err}
	}
	out, err := applyPatch(data, patch)
	if err != nil {
		return &project.ExternalToolError{Step: StepPatch, Command: path, Err: err}
	}
	if err := fileops.WriteFileMode(path, out); err != nil {
		return &project.ExternalToolError{Step: StepPatch, Command: path, Err: err}
	}
	return nil
}

func (i Installer) run(ctx context.Context, step, dir string, args ...string) error {
	if err := i.Runner.Run(ctx, dir, i.Executable, args...); err != nil {
		return &project.ExternalToolError{
			Step:    step,
			Command: commandLine(i.Executable, args),
			Err:     err,
		}
	}
	return nil
}

func commandLine(name string, args []string) string {
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}

// Where: cli/internal/ports/scaffold.go
// What: Interfaces the scaffold workflow depends on.
// Why: Keep the workflow testable without a terminal, a filesystem, or npm.
package ports

import (
	"context"

	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/pkgmanager"
)

// TemplateSource is the read-only template registry.
type TemplateSource interface {
	All() []template.Descriptor
	Lookup(id string) (template.Descriptor, error)
}

// Prompts gathers the two interactive answers.
type Prompts interface {
	SelectTemplate() (string, error)
	ReadProjectName() (string, error)
}

// ProjectMaterializer writes the project tree.
type ProjectMaterializer interface {
	CreateProjectRoot(name string) (string, error)
	ApplyTemplate(d template.Descriptor, root string) error
}

// DependencyInstaller drives the package manager for one project.
type DependencyInstaller interface {
	CheckAvailable() error
	InitManifest(ctx context.Context, root string) error
	InstallDependencies(ctx context.Context, root string, deps, devDeps []string) error
	PatchManifest(root string, patch pkgmanager.ManifestPatch) error
}

// InstallerFactory builds an installer for a package-manager executable.
// continueOnError mirrors the warn policy.
type InstallerFactory func(executable string, continueOnError bool) DependencyInstaller

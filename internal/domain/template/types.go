// Where: cli/internal/domain/template/types.go
// What: Template descriptor types.
// Why: Describe a template as data so orchestration holds no boilerplate text.
package template

import "slices"

// FileSpec pairs a path relative to the project root with the embedded
// source that generates its content.
type FileSpec struct {
	Path   string `yaml:"path"`
	Source string `yaml:"source"`
}

// Script is a manifest script entry.
type Script struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// ManifestField is a top-level manifest key the template requires.
type ManifestField struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Descriptor is one template. Registry hands out copies, so callers may not
// mutate the registry through a Descriptor.
type Descriptor struct {
	ID              string          `yaml:"id"`
	DisplayName     string          `yaml:"name"`
	Description     string          `yaml:"description"`
	PackageManager  string          `yaml:"package_manager"`
	DefaultPort     int             `yaml:"default_port"`
	Directories     []string        `yaml:"directories"`
	Files           []FileSpec      `yaml:"files"`
	Env             []string        `yaml:"env"`
	Dependencies    []string        `yaml:"dependencies"`
	DevDependencies []string        `yaml:"dev_dependencies"`
	Scripts         []Script        `yaml:"scripts"`
	ManifestFields  []ManifestField `yaml:"manifest_fields"`
}

// Label is the prompt text for the descriptor.
func (d Descriptor) Label() string {
	if d.Description == "" {
		return d.DisplayName
	}
	return d.DisplayName + " - " + d.Description
}

func (d Descriptor) clone() Descriptor {
	d.Directories = slices.Clone(d.Directories)
	d.Files = slices.Clone(d.Files)
	d.Env = slices.Clone(d.Env)
	d.Dependencies = slices.Clone(d.Dependencies)
	d.DevDependencies = slices.Clone(d.DevDependencies)
	d.Scripts = slices.Clone(d.Scripts)
	d.ManifestFields = slices.Clone(d.ManifestFields)
	return d
}

// StandardDirectories is the folder layout every template creates, in order.
func StandardDirectories() []string {
	return []string{"models", "controllers", "routes", "config", "utils", "services", "middleware"}
}

// RenderedFile is a file with its content fully generated.
type RenderedFile struct {
	Path    string
	Content string
}

type registryDocument struct {
	Version   int          `yaml:"version"`
	Templates []Descriptor `yaml:"templates"`
}

// Where: cli/internal/infra/templategen/materialize.go
// What: Project materializer: root directory, template folders, template files.
// Why: Apply a descriptor to disk in declared order and stop at the first failure.
package templategen

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/poruru/scaffold/cli/internal/domain/project"
	"github.com/poruru/scaffold/cli/internal/domain/template"
	"github.com/poruru/scaffold/cli/internal/infra/fileops"
	"github.com/poruru/scaffold/cli/internal/infra/ui"
)

// FileRenderer produces a descriptor's file contents.
type FileRenderer interface {
	RenderFiles(d template.Descriptor) ([]template.RenderedFile, error)
}

// Materializer writes projects under WorkDir. Partial trees are left on
// disk when a step fails.
type Materializer struct {
	WorkDir  string
	Renderer FileRenderer
	UI       ui.UserInterface

	mkdir     func(path string) error
	writeFile func(path, content string) error
}

// NewMaterializer constructs a Materializer rooted at workDir.
func NewMaterializer(workDir string, renderer FileRenderer, out ui.UserInterface) Materializer {
	return Materializer{
		WorkDir:   workDir,
		Renderer:  renderer,
		UI:        out,
		mkdir:     fileops.CreateDir,
		writeFile: fileops.WriteFile,
	}
}

// CreateProjectRoot creates WorkDir/name and returns its absolute path.
func (m Materializer) CreateProjectRoot(name string) (string, error) {
	root, err := filepath.Abs(filepath.Join(m.WorkDir, name))
	if err != nil {
		return "", &project.FilesystemError{Op: project.OpDirectoryCreate, Path: name, Err: err}
	}
	if err := m.createDir(root); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &project.FilesystemError{Op: project.OpDirectoryExists, Path: root, Err: err}
		}
		return "", &project.FilesystemError{Op: project.OpDirectoryCreate, Path: root, Err: err}
	}
	m.step("Created folder: %s", name)
	return root, nil
}

// ApplyTemplate renders every file first, then creates d.Directories and
// writes d.Files in declared order.
func (m Materializer) ApplyTemplate(d template.Descriptor, root string) error {
	if m.Renderer == nil {
		return fmt.Errorf("materializer has no renderer")
	}
	files, err := m.Renderer.RenderFiles(d)
	if err != nil {
		return fmt.Errorf("template %s: %w", d.ID, err)
	}

	for _, dir := range d.Directories {
		path := filepath.Join(root, dir)
		if err := m.createDir(path); err != nil {
			return &project.FilesystemError{Op: project.OpDirectoryCreate, Path: path, Err: err}
		}
		m.step("Created folder: %s", dir)
	}

	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := m.write(path, file.Content); err != nil {
			return &project.FilesystemError{Op: project.OpFileWrite, Path: path, Err: err}
		}
		m.step("Created file: %s", file.Path)
	}
	return nil
}

func (m Materializer) createDir(path string) error {
	if m.mkdir != nil {
		return m.mkdir(path)
	}
	return fileops.CreateDir(path)
}

func (m Materializer) write(path, content string) error {
	if m.writeFile != nil {
		return m.writeFile(path, content)
	}
	return fileops.WriteFile(path, content)
}

func (m Materializer) step(format string, args ...any) {
	if m.UI == nil {
		return
	}
	m.UI.Step(fmt.Sprintf(format, args...))
}

// Where: cli/internal/domain/project/request.go
// What: Scaffold request value and project-name validation.
// Why: Share one validation rule between the prompt and the materializer.
package project

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	msgEmptyName     = "Project name cannot be empty!"
	msgAlreadyExists = "Folder already exists!"
)

// ScaffoldRequest is built from user input, validated once, then discarded.
type ScaffoldRequest struct {
	TemplateID      string
	ProjectName     string
	TargetDirectory string
}

// NewScaffoldRequest resolves the target directory of name under workDir.
func NewScaffoldRequest(templateID, name, workDir string) (ScaffoldRequest, error) {
	target, err := filepath.Abs(filepath.Join(workDir, name))
	if err != nil {
		return ScaffoldRequest{}, err
	}
	return ScaffoldRequest{
		TemplateID:      templateID,
		ProjectName:     name,
		TargetDirectory: target,
	}, nil
}

// NameValidator checks project names relative to a working directory.
type NameValidator struct {
	WorkDir string
	// Stat defaults to os.Lstat. Any entry, including a dangling symlink,
	// counts as a collision.
	Stat func(string) (os.FileInfo, error)
}

// Validate returns a *ValidationError when name is empty or already taken.
func (v NameValidator) Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Name: name, Message: msgEmptyName}
	}
	stat := v.Stat
	if stat == nil {
		stat = os.Lstat
	}
	// Same join as NewScaffoldRequest and the materializer, so an absolute
	// name is checked where it will be created.
	if _, err := stat(filepath.Join(v.WorkDir, name)); err == nil {
		return &ValidationError{Name: name, Message: msgAlreadyExists}
	}
	return nil
}

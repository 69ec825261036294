// Where: cli/internal/domain/project/errors.go
// What: Error taxonomy for a scaffolding run.
// Why: Let the orchestrator decide fatal vs. recoverable by type, not by message.
package project

import (
	"errors"
	"fmt"
)

// ErrCancelled reports that the user aborted an interactive prompt.
var ErrCancelled = errors.New("cancelled by user")

// ValidationError rejects a project name. It is recoverable: the prompt
// shows Message and asks again.
type ValidationError struct {
	Name    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FilesystemOp identifies which filesystem step failed.
type FilesystemOp string

const (
	OpDirectoryExists FilesystemOp = "directory exists"
	OpDirectoryCreate FilesystemOp = "create directory"
	OpFileWrite       FilesystemOp = "write file"
)

// FilesystemError is a fatal failure while materializing the project tree.
type FilesystemError struct {
	Op   FilesystemOp
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	if e.Op == OpDirectoryExists {
		return fmt.Sprintf("%s: %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// ExternalToolError is a failed package-manager invocation.
type ExternalToolError struct {
	Step    string
	Command string
	Err     error
}

func (e *ExternalToolError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Step, e.Command, e.Err)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// UnknownTemplateError means the prompt offered an id the registry does not
// know. Registry and prompt share one table, so this is a programming error.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}

// IsExternalToolError reports whether err wraps an ExternalToolError.
func IsExternalToolError(err error) bool {
	var target *ExternalToolError
	return errors.As(err, &target)
}

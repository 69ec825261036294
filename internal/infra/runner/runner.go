// Where: cli/internal/infra/runner/runner.go
// What: External command execution.
// Why: Let installers shell out through an interface that tests can replace.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	LookPath(name string) (string, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
// Nil writers fall back to the process stdout/stderr.
type ExecRunner struct {
	Out    io.Writer
	ErrOut io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func (r ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r ExecRunner) stdout() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.ErrOut != nil {
		return r.ErrOut
	}
	return os.Stderr
}

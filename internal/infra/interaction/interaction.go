// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when prompting is required but stdin is not a TTY.
var ErrNotTerminal = errors.New("interactive prompts require a terminal on stdin")

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	// Input re-prompts until validate returns nil or the user aborts.
	Input(title string, validate func(string) error) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RequireTerminal fails fast instead of letting a prompt block on a pipe.
func RequireTerminal(file *os.File) error {
	if !IsTerminal(file) {
		return ErrNotTerminal
	}
	return nil
}

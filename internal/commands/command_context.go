// Where: cli/internal/commands/command_context.go
// What: Shared helpers for command exit paths.
// Why: Keep error output to one consistent line.
package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/poruru/scaffold/cli/internal/infra/fileops"
	"github.com/poruru/scaffold/cli/internal/infra/ui"
	"github.com/poruru/scaffold/cli/internal/meta"
)

// exitWithError prints a single red error line and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	ui.New(out).Error(err.Error())
	return 1
}

// loadDotEnv loads .env from workDir when present. Variables already set
// in the environment win.
func loadDotEnv(workDir string, errOut io.Writer) {
	path := filepath.Join(workDir, meta.EnvFilename)
	if !fileops.FileExists(path) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		ui.New(errOut).Warn(fmt.Sprintf("failed to load %s: %v", meta.EnvFilename, err))
	}
}

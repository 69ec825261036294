// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity in one place for config paths and env prefixes.
package meta

const (
	// Project Identity
	AppName     = "scaffold"
	Description = "A universal CLI tool to set up project templates"
	EnvPrefix   = "SCAFFOLD"

	// Directory Layout
	HomeDir        = ".scaffold"
	ConfigFilename = "config.yaml"
	EnvFilename    = ".env"
)

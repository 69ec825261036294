// Where: cli/cmd/scaffold/main.go
// What: CLI entrypoint.
// Why: Execute scaffold with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru/scaffold/cli/internal/commands"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(commands.Run(os.Args[1:], deps))
}

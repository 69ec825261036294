// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is overridden at link time (-ldflags "-X .../version.Version=1.2.3").
var Version = "1.0.0"

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the release version, followed by the VCS revision when
// build info carries one. A modified tree is marked "(dirty)".
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return Version
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return Version
	}
	if modified {
		return fmt.Sprintf("%s (%s, dirty)", Version, revision)
	}
	return fmt.Sprintf("%s (%s)", Version, revision)
}

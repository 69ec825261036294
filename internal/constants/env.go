// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes, combined with the SCAFFOLD_ prefix by envutil.
const (
	HostSuffixConfigPath     = "CONFIG_PATH"
	HostSuffixConfigHome     = "CONFIG_HOME"
	HostSuffixPackageManager = "PACKAGE_MANAGER"
	HostSuffixInstallFailure = "INSTALL_FAILURE"
	HostSuffixNoEmoji        = "NO_EMOJI"
)

// Variables read by the generated project's config boilerplate.
// The scaffolder writes these names into templates and never reads them.
const (
	EnvPort           = "PORT"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"
	EnvNodeEnv        = "NODE_ENV"
	EnvSessionSecret  = "SESSION_SECRET"
)

// GeneratedEnvVars lists the generated config keys in the order they are written.
func GeneratedEnvVars() []string {
	return []string{EnvPort, EnvAllowedOrigins, EnvNodeEnv, EnvSessionSecret}
}

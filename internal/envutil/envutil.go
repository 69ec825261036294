// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru/scaffold/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the CLI prefix with the given suffix.
// Example: HostEnvKey("CONFIG_PATH") returns "SCAFFOLD_CONFIG_PATH".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// GetHostEnvBool reports whether a host-level variable is set to a truthy value.
// Unset or empty variables return fallback.
func GetHostEnvBool(suffix string, fallback bool) (bool, error) {
	raw := GetHostEnv(suffix)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("parse %s: %w", HostEnvKey(suffix), err)
	}
	return value, nil
}

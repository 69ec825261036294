// Where: cli/internal/config/global.go
// What: User config load/save helpers.
// Why: Manage ~/.scaffold/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/scaffold/cli/internal/constants"
	"github.com/poruru/scaffold/cli/internal/envutil"
	"github.com/poruru/scaffold/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// InstallFailurePolicy decides what a failed package-manager step does to the run.
type InstallFailurePolicy string

const (
	// InstallFailureWarn logs the failure and continues with the next step.
	InstallFailureWarn InstallFailurePolicy = "warn"
	// InstallFailureFail aborts the run.
	InstallFailureFail InstallFailurePolicy = "fail"
)

// GlobalConfig represents ~/.scaffold/config.yaml.
type GlobalConfig struct {
	Version        int                  `yaml:"version"`
	PackageManager string               `yaml:"package_manager,omitempty"`
	InstallFailure InstallFailurePolicy `yaml:"install_failure,omitempty"`
	Emoji          *bool                `yaml:"emoji,omitempty"`
}

// Settings is the resolved configuration used by a run.
type Settings struct {
	// PackageManager overrides the template's package manager when non-empty.
	PackageManager string
	InstallFailure InstallFailurePolicy
	Emoji          bool
}

// GlobalConfigPath returns the path to the user config file.
// Respects SCAFFOLD_CONFIG_PATH and SCAFFOLD_CONFIG_HOME.
func GlobalConfigPath() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixConfigPath); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := envutil.GetHostEnv(constants.HostSuffixConfigHome); override != "" {
		return filepath.Join(override, meta.ConfigFilename), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFilename), nil
}

// LoadGlobalConfig reads and parses the user configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the user config if present and applies env overrides.
// A missing config file yields defaults; it is never created implicitly.
func Resolve() (Settings, error) {
	settings := Settings{InstallFailure: InstallFailureWarn, Emoji: true}

	path, err := GlobalConfigPath()
	if err != nil {
		return Settings{}, err
	}
	cfg, err := LoadGlobalConfig(path)
	switch {
	case err == nil:
		settings = applyFile(settings, cfg)
	case errors.Is(err, os.ErrNotExist):
	default:
		return Settings{}, err
	}

	if pm := envutil.GetHostEnv(constants.HostSuffixPackageManager); pm != "" {
		settings.PackageManager = pm
	}
	if policy := envutil.GetHostEnv(constants.HostSuffixInstallFailure); policy != "" {
		settings.InstallFailure = InstallFailurePolicy(strings.ToLower(policy))
	}
	noEmoji, err := envutil.GetHostEnvBool(constants.HostSuffixNoEmoji, !settings.Emoji)
	if err != nil {
		return Settings{}, err
	}
	settings.Emoji = !noEmoji

	if err := settings.InstallFailure.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func applyFile(settings Settings, cfg GlobalConfig) Settings {
	if pm := strings.TrimSpace(cfg.PackageManager); pm != "" {
		settings.PackageManager = pm
	}
	if cfg.InstallFailure != "" {
		settings.InstallFailure = InstallFailurePolicy(strings.ToLower(string(cfg.InstallFailure)))
	}
	if cfg.Emoji != nil {
		settings.Emoji = *cfg.Emoji
	}
	return settings
}

// Validate rejects unknown policies.
func (p InstallFailurePolicy) Validate() error {
	switch p {
	case InstallFailureWarn, InstallFailureFail:
		return nil
	default:
		return fmt.Errorf("invalid install_failure policy %q (want %q or %q)", p, InstallFailureWarn, InstallFailureFail)
	}
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "libscout"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. LIBSCOUT_VERBOSE=true).
	EnvPrefix = "LIBSCOUT"
)

// ErrInvalidConfig is the sentinel error wrapped by config validation
// failures.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config holds the tunable discovery settings. Everything has a
	// working default; a config file is never required.
	Config struct {
		// Blacklist is the set of bare directory or file names skipped
		// anywhere in the tree, merged with the built-in defaults.
		Blacklist []string `mapstructure:"blacklist"`
		// IgnoreGlobs are doublestar patterns always added to the ignore set.
		IgnoreGlobs []string `mapstructure:"ignore_globs"`
		// ResourceExtensions are the recognized textual automation-source
		// extensions, dot included.
		ResourceExtensions []string `mapstructure:"resource_extensions"`
		// Verbose enables debug-level logging when not overridden by the
		// --verbose flag.
		Verbose bool `mapstructure:"verbose"`
	}

	// LoadOptions controls config loading.
	LoadOptions struct {
		// ConfigFilePath, when non-empty, is used exclusively (the --config
		// flag). A missing file is then an error rather than a fallback.
		ConfigFilePath string
	}
)

// DefaultBlacklist returns the built-in bare-name blacklist. The returned
// slice is a fresh copy.
func DefaultBlacklist() []string {
	return []string{"__pycache__", ".git", ".hg", ".svn", "node_modules"}
}

// DefaultResourceExtensions returns the built-in resource file extensions.
// The returned slice is a fresh copy.
func DefaultResourceExtensions() []string {
	return []string{".robot", ".resource", ".txt"}
}

// DefaultConfig returns a Config populated with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Blacklist:          DefaultBlacklist(),
		ResourceExtensions: DefaultResourceExtensions(),
	}
}

// ConfigDir returns the libscout configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads configuration from the config file (if present), environment
// variables, and defaults, with precedence defaults < file < env.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("blacklist", defaults.Blacklist)
	v.SetDefault("ignore_globs", defaults.IgnoreGlobs)
	v.SetDefault("resource_extensions", defaults.ResourceExtensions)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		// A missing default config file is fine; anything else is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured extensions are usable.
func (c *Config) Validate() error {
	for _, ext := range c.ResourceExtensions {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("%w: resource extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	return nil
}

// MergedBlacklist returns the configured blacklist with the built-in
// defaults folded in, deduplicated, so a user config can only add names,
// never accidentally drop the defaults.
func (c *Config) MergedBlacklist() []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, name := range append(DefaultBlacklist(), c.Blacklist...) {
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		merged = append(merged, name)
	}
	return merged
}

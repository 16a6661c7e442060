// Package config provides configuration types and defaults for stylebook.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/flags"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/paths"
)

// Config holds all configuration options for stylebook.
type Config struct {
	// UserDir is the base directory for user styles; tables are read from
	// <user_dir>/styles/*.yaml. Default: ~/.stylebook
	UserDir string `mapstructure:"user_dir"`

	// DefaultStyle is used by styles:render and styles:pick when no style is given.
	DefaultStyle string `mapstructure:"default_style"`

	// DefaultAspectRatio is used when no aspect ratio is given. Default: "16:9"
	DefaultAspectRatio string `mapstructure:"default_aspect_ratio"`

	// Debug enables the debug log file.
	Debug bool `mapstructure:"debug"`

	// LogPath is the debug log file. Default: stylebook.log
	LogPath string `mapstructure:"log_path"`

	// Flags toggles optional features, see internal/flags.
	Flags map[string]bool `mapstructure:"flags"`
}

// DefaultUserDir returns the default base directory for user styles.
// Returns ~/.stylebook or empty string if home dir unavailable.
func DefaultUserDir() string {
	return paths.DefaultUserDir()
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UserDir:            DefaultUserDir(),
		DefaultStyle:       domain.DefaultID,
		DefaultAspectRatio: domain.DefaultAspectRatioID,
		LogPath:            "stylebook.log",
		Flags: map[string]bool{
			flags.FlagUserStyles: true,
		},
	}
}

// Validate checks the configuration for errors.
// Empty values are valid and fall back to defaults.
func Validate(cfg Config) error {
	if cfg.DefaultAspectRatio != "" {
		if _, ok := domain.LookupAspectRatio(cfg.DefaultAspectRatio); !ok {
			valid := make([]string, 0)
			for _, a := range domain.AspectRatios() {
				valid = append(valid, a.ID)
			}
			return fmt.Errorf("default_aspect_ratio %q is not supported (valid: %v)", cfg.DefaultAspectRatio, valid)
		}
	}
	if cfg.UserDir != "" {
		if info, err := os.Stat(paths.ResolveUserDir(cfg.UserDir)); err == nil && !info.IsDir() {
			return fmt.Errorf("user_dir %q is not a directory", cfg.UserDir)
		}
	}
	return nil
}

// UserStylesDir returns the configured base directory for user styles,
// or empty string when user styles are disabled by feature flag.
func (c Config) UserStylesDir(fl *flags.Registry) string {
	if !fl.Enabled(flags.FlagUserStyles) {
		return ""
	}
	return paths.ResolveUserDir(c.UserDir)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# stylebook configuration
# Lookup order: .stylebook/config.yaml, then ~/.config/stylebook/config.yaml

# Base directory for user styles. Tables are read from <user_dir>/styles/*.yaml
# and appended after the built-in styles. Built-in ids cannot be overridden.
# user_dir: ~/.stylebook

# Style used when --style is not given. Unknown ids fall back to "default".
default_style: default

# Aspect ratio used when --aspect is not given.
# Valid values: 16:9, 9:16, 1:1, 4:3, 3:4
default_aspect_ratio: "16:9"

# Write a debug log (same as --debug or STYLEBOOK_DEBUG=1).
debug: false
log_path: stylebook.log

# Feature flags
flags:
  user-styles: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

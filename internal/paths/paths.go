// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// UserDirName is the directory under $HOME holding user styles.
	UserDirName = ".stylebook"
	// StylesDirName is the subdirectory holding YAML style tables.
	StylesDirName = "styles"
)

// DefaultUserDir returns ~/.stylebook, or empty string if the home
// directory cannot be determined.
func DefaultUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserDirName)
}

// ResolveUserDir resolves the user styles base directory from user input.
// It expands a leading ~ and accepts either the base dir or its styles dir.
//
// Input normalization:
//   - "" -> "~/.stylebook"
//   - "~/looks" -> "$HOME/looks"
//   - "/path/to/base/styles" -> "/path/to/base"
//   - "/path/to/base" -> "/path/to/base"
//
// Returns empty string only when a default or ~ path is requested and the
// home directory is unknown.
func ResolveUserDir(path string) string {
	if path == "" {
		return DefaultUserDir()
	}
	path = expandHome(path)
	if path == "" {
		return ""
	}
	path = filepath.Clean(path)

	if filepath.Base(path) == StylesDirName {
		return filepath.Dir(path)
	}
	return path
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

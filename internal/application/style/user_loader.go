package style

import (
	"os"
	"path/filepath"

	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/paths"
)

// UserStylesBaseDir returns the base directory for user styles (~/.stylebook).
// Returns empty string if home directory cannot be determined.
func UserStylesBaseDir() string {
	return paths.DefaultUserDir()
}

// UserStylesDir returns the path to user YAML style tables (~/.stylebook/styles).
// Returns empty string if home directory cannot be determined.
func UserStylesDir() string {
	base := UserStylesBaseDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, StylesDir)
}

// LoadUserStylesFromDir loads YAML styles from a user directory.
// baseDir should be the root directory (e.g., ~/.stylebook/) that contains a "styles" subdirectory.
// Returns nil, nil if the directory doesn't exist (graceful fallback).
// Invalid files are logged and skipped; styles from valid files are kept.
func LoadUserStylesFromDir(baseDir string) ([]*domain.Style, error) {
	if baseDir == "" {
		return nil, nil
	}

	stylesDir := filepath.Join(baseDir, StylesDir)
	info, err := os.Stat(stylesDir)
	if err != nil || !info.IsDir() {
		// Missing or unreadable directory - not an error, just no user styles
		return nil, nil
	}

	userFS := os.DirFS(baseDir)
	paths, err := styleFiles(userFS)
	if err != nil {
		log.Warn(log.CatStyles, "scanning user styles", "error", err.Error(), "dir", stylesDir)
		return nil, nil
	}

	var styles []*domain.Style
	for _, path := range paths {
		loaded, err := loadStylesFile(userFS, path, domain.SourceUser)
		if err != nil {
			// Log warning but don't fail - user may have partial/invalid tables
			log.Warn(log.CatStyles, "skipping invalid user style table", "error", err.Error(), "file", filepath.Join(baseDir, path))
			continue
		}
		styles = append(styles, loaded...)
	}

	log.Debug(log.CatStyles, "loaded user styles", "count", len(styles), "dir", stylesDir)
	return styles, nil
}

// Package style implements the application layer for the style registry.
//
// It turns YAML style tables into domain styles and assembles the registry once
// at startup:
//   - LoadStylesFromYAML reads the built-in tables from an fs.FS (styles/*.yaml)
//   - LoadUserStylesFromDir reads optional user tables from <base>/styles
//   - StyleService merges both (built-ins first, user duplicates skipped) and
//     exposes the render contract used by image-generation callers
//
// The domain package shares this package's name; import it aliased:
//
//	import domain "github.com/zjrosen/stylebook/internal/domain/style"
package style

package templates

import (
	"embed"
	"io/fs"
)

// styleTemplates embeds the built-in style tables.
// The structure is:
//   - styles/*.yaml (each file holds a "styles:" list, loaded in lexical file order)
//
//go:embed styles
var styleTemplates embed.FS

// StylesFS returns the embedded filesystem containing the built-in style tables.
// This is used by the style loader to build the registry.
func StylesFS() fs.FS {
	return styleTemplates
}

package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStylesFS_ContainsYAML(t *testing.T) {
	matches, err := fs.Glob(StylesFS(), "styles/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, matches, "expected embedded style tables")
}

func TestStyles_NoLegacySlotSyntax(t *testing.T) {
	fsys := StylesFS()

	var matches []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		// Slots use {{.Content}}; a bare {content} would be rendered literally
		if strings.Contains(string(data), "{content}") || strings.Contains(string(data), "{scene}") {
			matches = append(matches, path)
		}
		return nil
	})

	require.NoError(t, err)
	require.Empty(t, matches, "found brace-style slots in style tables: %v", matches)
}

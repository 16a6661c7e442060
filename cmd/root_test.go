package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	"github.com/zjrosen/stylebook/internal/config"
	"github.com/zjrosen/stylebook/internal/flags"
	"github.com/zjrosen/stylebook/internal/presentation"
)

func testService(t *testing.T) *appstyle.StyleService {
	t.Helper()
	svc, err := newStyleService(config.Config{})
	require.NoError(t, err)
	return svc
}

func writeUserStyle(t *testing.T, baseDir string) {
	t.Helper()
	dir := filepath.Join(baseDir, "styles")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(`
styles:
  - id: "claymation"
    name: "Claymation"
    prompt: "claymation diorama of {{.Content}}"
    negative_prompt: "photo"
`), 0o600))
}

func TestNewStyleService_UserStylesFlag(t *testing.T) {
	userDir := t.TempDir()
	writeUserStyle(t, userDir)

	on, err := newStyleService(config.Config{UserDir: userDir, Flags: map[string]bool{flags.FlagUserStyles: true}})
	require.NoError(t, err)
	_, ok := on.Lookup("claymation")
	require.True(t, ok, "user styles load when the flag is on")

	off, err := newStyleService(config.Config{UserDir: userDir, Flags: map[string]bool{flags.FlagUserStyles: false}})
	require.NoError(t, err)
	_, ok = off.Lookup("claymation")
	require.False(t, ok, "user styles are skipped when the flag is off")
}

func TestListStyles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listStyles(&buf, testService(t), ""))

	var got []presentation.StyleSummaryDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotEmpty(t, got)
	require.Equal(t, "default", got[0].ID)
	require.Equal(t, "built-in", got[0].Source)
}

func TestListStyles_SourceFilter(t *testing.T) {
	userDir := t.TempDir()
	writeUserStyle(t, userDir)
	svc, err := newStyleService(config.Config{UserDir: userDir, Flags: map[string]bool{flags.FlagUserStyles: true}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, listStyles(&buf, svc, "user"))

	var got []presentation.StyleSummaryDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "claymation", got[0].ID)
}

func TestListStyles_InvalidSource(t *testing.T) {
	var buf bytes.Buffer
	err := listStyles(&buf, testService(t), "remote")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown source")
}

func TestShowStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showStyle(&buf, testService(t), "noir", false, false))

	var got presentation.StyleDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "noir", got.ID)
	require.Contains(t, got.Prompt, "{{.Content}}")
}

func TestShowStyle_UnknownFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showStyle(&buf, testService(t), "typo", false, false))

	var got presentation.StyleDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "default", got.ID)
}

func TestShowStyle_Strict(t *testing.T) {
	var buf bytes.Buffer
	err := showStyle(&buf, testService(t), "typo", true, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown style "typo"`)
	require.Empty(t, buf.String())
}

func TestShowStyle_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showStyle(&buf, testService(t), "noir", false, true))
	require.Contains(t, buf.String(), "Film Noir (noir)")
}

func TestRenderStyle(t *testing.T) {
	svc := testService(t)

	var buf bytes.Buffer
	err := renderStyle(&buf, nil, svc, renderOptions{
		StyleID:     "cinematic",
		Title:       "Episode 1",
		Scene:       "a quiet forest",
		AspectRatio: "9:16",
	})
	require.NoError(t, err)

	var got presentation.RenderDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "cinematic", got.StyleID)
	require.Equal(t, svc.RenderPrompt("cinematic", "Episode 1", "a quiet forest"), got.Prompt)
	require.Equal(t, svc.GetNegativePrompt("cinematic"), got.NegativePrompt)
	require.Equal(t, "9:16", got.AspectRatio)
	require.Equal(t, 720, got.Width)
	require.Equal(t, 1280, got.Height)
}

func TestRenderStyle_SceneFromStdin(t *testing.T) {
	svc := testService(t)

	var buf bytes.Buffer
	err := renderStyle(&buf, strings.NewReader("a rainy alley\n"), svc, renderOptions{StyleID: "noir", Scene: "-"})
	require.NoError(t, err)

	var got presentation.RenderDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, svc.RenderPrompt("noir", "", "a rainy alley"), got.Prompt)
}

func TestRenderStyle_FallbackAndStrict(t *testing.T) {
	svc := testService(t)

	var buf bytes.Buffer
	require.NoError(t, renderStyle(&buf, nil, svc, renderOptions{StyleID: "typo", Scene: "x", AspectRatio: "21:9"}))

	var got presentation.RenderDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "default", got.StyleID)
	require.Equal(t, "16:9", got.AspectRatio)

	err := renderStyle(&bytes.Buffer{}, nil, svc, renderOptions{StyleID: "typo", Scene: "x", Strict: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown style")

	err = renderStyle(&bytes.Buffer{}, nil, svc, renderOptions{StyleID: "noir", Scene: "x", AspectRatio: "21:9", Strict: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown aspect ratio")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"styles:list", "styles:show", "styles:render", "styles:pick"} {
		require.True(t, names[want], "expected %s to be registered", want)
	}
}

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	"github.com/zjrosen/stylebook/internal/presentation"
	"github.com/zjrosen/stylebook/internal/ui/stylepicker"
)

var pickTitle string

var stylesPickCmd = &cobra.Command{
	Use:   "styles:pick",
	Short: "Choose a style and aspect ratio interactively",
	Long: `Open a terminal picker to choose a style and an aspect ratio and type a
scene, with a live preview of the rendered prompt.

On confirm the render result is printed as JSON on stdout (the picker itself
draws on stderr, so the output can be piped). Cancelling prints nothing.

Examples:
  stylebook styles:pick
  stylebook styles:pick --title "Episode 4" | jq -r .prompt`,
	Args: cobra.NoArgs,
	RunE: runStylesPick,
}

func init() {
	stylesPickCmd.Flags().StringVarP(&pickTitle, "title", "t", "", "Optional title prefixed to the scene")
	rootCmd.AddCommand(stylesPickCmd)
}

func runStylesPick(cmd *cobra.Command, _ []string) error {
	model := stylepicker.New(styleService.Registry(), stylepicker.Options{
		Title:              pickTitle,
		DefaultStyle:       cfg.DefaultStyle,
		DefaultAspectRatio: cfg.DefaultAspectRatio,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	picked, ok := final.(stylepicker.Model)
	if !ok {
		return fmt.Errorf("running picker: unexpected model %T", final)
	}
	sel, done := picked.Result()
	if !done {
		return nil
	}

	result := styleService.Render(appstyle.RenderRequest{
		StyleID:     sel.StyleID,
		Title:       sel.Title,
		Scene:       sel.Scene,
		AspectRatio: sel.AspectRatio,
	})
	return presentation.NewFormatter(cmd.OutOrStdout()).FormatRender(presentation.FromRenderResult(result))
}

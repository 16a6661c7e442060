package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/presentation"
)

var (
	showStrict bool
	showPretty bool
)

var stylesShowCmd = &cobra.Command{
	Use:   "styles:show <id>",
	Short: "Show a style definition",
	Long: `Show the full definition of a style as JSON.

Unknown ids show the "default" style, matching how prompts are rendered.
Use --strict to fail instead.

Examples:
  stylebook styles:show cinematic
  stylebook styles:show cinematic --pretty
  stylebook styles:show typo --strict   # exits non-zero`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStyle(cmd.OutOrStdout(), styleService, args[0], showStrict, showPretty)
	},
}

func init() {
	stylesShowCmd.Flags().BoolVar(&showStrict, "strict", false, "Fail on unknown style ids instead of showing the default")
	stylesShowCmd.Flags().BoolVar(&showPretty, "pretty", false, "Render a text card instead of JSON")
	rootCmd.AddCommand(stylesShowCmd)
}

func showStyle(w io.Writer, svc *appstyle.StyleService, id string, strict, pretty bool) error {
	style, err := resolveStyle(svc, id, strict)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(w)
	dto := presentation.FromDomainStyle(style)
	if pretty {
		return formatter.FormatStyleCard(dto, 80)
	}
	return formatter.FormatStyle(dto)
}

// resolveStyle returns the style for id, or an error for unknown ids when strict.
func resolveStyle(svc *appstyle.StyleService, id string, strict bool) (*domain.Style, error) {
	if !strict {
		return svc.GetStyle(id), nil
	}
	style, ok := svc.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown style %q (see 'stylebook styles:list')", id)
	}
	return style, nil
}

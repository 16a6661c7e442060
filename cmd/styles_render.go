package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/presentation"
)

// renderOptions holds styles:render inputs after flag resolution.
type renderOptions struct {
	StyleID     string
	Title       string
	Scene       string
	AspectRatio string
	Strict      bool
}

var renderOpts renderOptions

var stylesRenderCmd = &cobra.Command{
	Use:   "styles:render",
	Short: "Render the prompt and negative prompt for a scene",
	Long: `Render the image prompt for a scene in a style and print it as JSON
together with the style's negative prompt and the frame size.

The scene is prefixed with "<title>: " when --title is given.
Use --scene - to read the scene from stdin.

Examples:
  stylebook styles:render --style noir --scene "a detective under a streetlamp"
  stylebook styles:render -s anime -t "Episode 1" --scene "a quiet forest" -a 9:16
  echo "a rainy alley" | stylebook styles:render -s cinematic --scene -

  # Feed an image API
  stylebook styles:render -s cinematic --scene "a harbor at dawn" | jq -r .prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOpts
		if !cmd.Flags().Changed("style") {
			opts.StyleID = cfg.DefaultStyle
		}
		if !cmd.Flags().Changed("aspect") {
			opts.AspectRatio = cfg.DefaultAspectRatio
		}
		return renderStyle(cmd.OutOrStdout(), cmd.InOrStdin(), styleService, opts)
	},
}

func init() {
	stylesRenderCmd.Flags().StringVarP(&renderOpts.StyleID, "style", "s", "", "Style id (default from config, falls back to \"default\")")
	stylesRenderCmd.Flags().StringVarP(&renderOpts.Title, "title", "t", "", "Optional title prefixed to the scene")
	stylesRenderCmd.Flags().StringVar(&renderOpts.Scene, "scene", "", "Scene content, or - to read stdin")
	stylesRenderCmd.Flags().StringVarP(&renderOpts.AspectRatio, "aspect", "a", "", "Aspect ratio: 16:9, 9:16, 1:1, 4:3, 3:4")
	stylesRenderCmd.Flags().BoolVar(&renderOpts.Strict, "strict", false, "Fail on unknown style or aspect ratio instead of falling back")
	rootCmd.AddCommand(stylesRenderCmd)
}

func renderStyle(w io.Writer, stdin io.Reader, svc *appstyle.StyleService, opts renderOptions) error {
	if opts.Scene == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading scene from stdin: %w", err)
		}
		opts.Scene = strings.TrimRight(string(data), "\r\n")
	}

	if opts.Strict {
		if _, err := resolveStyle(svc, opts.StyleID, true); err != nil {
			return err
		}
		if _, ok := domain.LookupAspectRatio(opts.AspectRatio); opts.AspectRatio != "" && !ok {
			return fmt.Errorf("unknown aspect ratio %q", opts.AspectRatio)
		}
	}

	result := svc.Render(appstyle.RenderRequest{
		StyleID:     opts.StyleID,
		Title:       opts.Title,
		Scene:       opts.Scene,
		AspectRatio: opts.AspectRatio,
	})
	log.Debug(log.CatCLI, "rendered prompt", "requested", opts.StyleID, "style", result.StyleID, "aspect", result.AspectRatio.ID)

	formatter := presentation.NewFormatter(w)
	return formatter.FormatRender(presentation.FromRenderResult(result))
}

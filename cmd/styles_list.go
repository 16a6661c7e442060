package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/presentation"
)

var listSource string

var stylesListCmd = &cobra.Command{
	Use:   "styles:list",
	Short: "List all registered styles",
	Long: `List all registered styles as JSON, in menu order.

Built-in styles come first, followed by styles from the user directory.
Use --source to show only built-in or only user styles.

Examples:
  # List all styles
  stylebook styles:list

  # Only styles from ~/.stylebook/styles
  stylebook styles:list --source user

  # Parse specific fields with jq
  stylebook styles:list | jq -r '.[].id'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listStyles(cmd.OutOrStdout(), styleService, listSource)
	},
}

func init() {
	stylesListCmd.Flags().StringVar(&listSource, "source", "", "Filter by source: built-in or user")
	rootCmd.AddCommand(stylesListCmd)
}

// listStyles writes the styles as JSON, optionally filtered by source name
func listStyles(w io.Writer, svc *appstyle.StyleService, source string) error {
	styles := svc.Styles()

	if source != "" {
		want, err := parseSource(source)
		if err != nil {
			return err
		}
		filtered := make([]*domain.Style, 0)
		for _, s := range styles {
			if s.Source() == want {
				filtered = append(filtered, s)
			}
		}
		styles = filtered
	}

	formatter := presentation.NewFormatter(w)
	return formatter.FormatStyles(presentation.FromDomainStyleSummaries(styles))
}

func parseSource(name string) (domain.Source, error) {
	for _, s := range []domain.Source{domain.SourceBuiltIn, domain.SourceUser} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown source %q (valid: built-in, user)", name)
}

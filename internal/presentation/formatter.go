package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatStyles formats a list of styles as JSON
func (f *Formatter) FormatStyles(styles []StyleSummaryDTO) error {
	return f.encode(styles)
}

// FormatStyle formats a single style as JSON
func (f *Formatter) FormatStyle(style StyleDTO) error {
	return f.encode(style)
}

// FormatRender formats a render result as JSON
func (f *Formatter) FormatRender(result RenderDTO) error {
	return f.encode(result)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	// Prompts are plain text; keep <, > and & readable
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

var (
	cardBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	cardTitleColor  = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#73F59F"}
	cardLabelColor  = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
)

// FormatStyleCard renders a style as a bordered text card for terminals.
func (f *Formatter) FormatStyleCard(style StyleDTO, width int) error {
	if width <= 0 {
		width = 80
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(cardTitleColor)
	label := lipgloss.NewStyle().Foreground(cardLabelColor)
	body := lipgloss.NewStyle().Width(width - 4)

	negative := style.NegativePrompt
	if negative == "" {
		negative = "(none)"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title.Render(fmt.Sprintf("%s (%s)", style.Name, style.ID)),
		body.Render(style.Description),
		"",
		label.Render("prompt"),
		body.Render(style.Prompt),
		"",
		label.Render("negative prompt"),
		body.Render(negative),
		"",
		label.Render("source: "+style.Source),
	)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cardBorderColor).
		Padding(0, 1).
		Render(content)

	_, err := fmt.Fprintln(f.writer, card)
	return err
}

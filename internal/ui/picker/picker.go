// Package picker provides a generic option picker component.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/stylebook/internal/ui/styles"
)

const defaultBoxWidth = 25

// Option represents a picker option with label and value.
type Option struct {
	Label string
	Value string
	Hint  string // Optional dimmed text shown after the label
}

// Model holds the picker state.
type Model struct {
	title    string
	options  []Option
	selected int
	boxWidth int // Width of the picker box itself
}

// New creates a new picker with the given title and options.
func New(title string, options []Option) Model {
	return Model{
		title:    title,
		options:  options,
		selected: 0,
	}
}

// SetBoxWidth sets the width of the picker box itself.
func (m Model) SetBoxWidth(width int) Model {
	m.boxWidth = width
	return m
}

// SetSelected sets the initially selected index.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.options) {
		m.selected = index
	}
	return m
}

// Selected returns the currently selected option.
func (m Model) Selected() Option {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected]
	}
	return Option{}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.options)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		case "home", "g":
			m.selected = 0
		case "end", "G":
			if len(m.options) > 0 {
				m.selected = len(m.options) - 1
			}
		}
	}
	return m, nil
}

// View renders the picker box (without positioning).
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	width := m.boxWidth
	if width == 0 {
		width = defaultBoxWidth
	}
	// Room for the border and the selection prefix
	lineWidth := max(width-2, 1)

	var options strings.Builder
	for i, opt := range m.options {
		text := opt.Label
		if opt.Hint != "" {
			text += " " + hintStyle.Render(opt.Hint)
		}
		text = ansi.Truncate(text, lineWidth, "…")

		var line string
		if i == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(text)
		} else {
			line = " " + text
		}
		options.WriteString(line)
		if i < len(m.options)-1 {
			options.WriteString("\n")
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width)

	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", width))
	content := titleStyle.Render(m.title) + "\n" +
		divider + "\n" +
		options.String()

	return boxStyle.Render(content)
}

// FindIndexByValue returns the index of the option with the given value.
func FindIndexByValue(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}

// Package stylepicker provides the interactive flow for choosing a style and an
// aspect ratio and entering a scene. It only presents the style table; rendering
// is delegated to the style provider.
package stylepicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/log"
	"github.com/zjrosen/stylebook/internal/ui/picker"
	"github.com/zjrosen/stylebook/internal/ui/styles"
)

// Step identifies the current screen of the flow.
type Step int

const (
	StepStyle Step = iota
	StepAspect
	StepScene
	StepDone
	StepCancelled
)

const (
	boxWidth       = 48
	sceneCharLimit = 2000
)

// Options configures the initial state of the flow.
type Options struct {
	Title              string // Prefixed to the scene in the preview and result
	DefaultStyle       string // Pre-selected style id
	DefaultAspectRatio string // Pre-selected aspect ratio id
	Scene              string // Initial scene text
}

// Selection is the outcome of a completed flow.
type Selection struct {
	StyleID     string
	AspectRatio string
	Title       string
	Scene       string
}

// Model holds the picker flow state.
type Model struct {
	provider domain.Provider
	title    string
	step     Step
	styles   picker.Model
	aspects  picker.Model
	scene    textinput.Model
	width    int
}

// New creates the flow over the given style provider.
func New(provider domain.Provider, opts Options) Model {
	styleOptions := make([]picker.Option, 0)
	for _, s := range provider.List() {
		styleOptions = append(styleOptions, picker.Option{Label: s.Name, Value: s.ID})
	}
	aspectOptions := make([]picker.Option, 0)
	for _, a := range domain.AspectRatios() {
		aspectOptions = append(aspectOptions, picker.Option{Label: a.ID, Value: a.ID, Hint: a.Name})
	}

	ti := textinput.New()
	ti.Placeholder = "describe the scene"
	ti.Prompt = "> "
	ti.CharLimit = sceneCharLimit
	ti.Width = boxWidth
	ti.SetValue(opts.Scene)

	return Model{
		provider: provider,
		title:    opts.Title,
		step:     StepStyle,
		styles: picker.New("Style", styleOptions).
			SetBoxWidth(boxWidth).
			SetSelected(picker.FindIndexByValue(styleOptions, opts.DefaultStyle)),
		aspects: picker.New("Aspect ratio", aspectOptions).
			SetBoxWidth(boxWidth).
			SetSelected(picker.FindIndexByValue(aspectOptions, opts.DefaultAspectRatio)),
		scene: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Step returns the current step.
func (m Model) Step() Step {
	return m.step
}

// Result returns the selection and true if the flow was completed.
func (m Model) Result() (Selection, bool) {
	if m.step != StepDone {
		return Selection{}, false
	}
	return m.selection(), true
}

func (m Model) selection() Selection {
	return Selection{
		StyleID:     m.styles.Selected().Value,
		AspectRatio: m.aspects.Selected().Value,
		Title:       m.title,
		Scene:       m.scene.Value(),
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.cancel()
		case "esc":
			return m.back()
		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case StepStyle:
		m.styles, cmd = m.styles.Update(msg)
	case StepAspect:
		m.aspects, cmd = m.aspects.Update(msg)
	case StepScene:
		m.scene, cmd = m.scene.Update(msg)
	}
	return m, cmd
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepStyle:
		m.step = StepAspect
		log.Debug(log.CatUI, "style selected", "style", m.styles.Selected().Value)
		return m, nil
	case StepAspect:
		m.step = StepScene
		log.Debug(log.CatUI, "aspect ratio selected", "aspect", m.aspects.Selected().Value)
		return m, m.scene.Focus()
	case StepScene:
		m.step = StepDone
		m.scene.Blur()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.step {
	case StepStyle:
		return m.cancel()
	case StepAspect:
		m.step = StepStyle
	case StepScene:
		m.scene.Blur()
		m.step = StepAspect
	}
	return m, nil
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.step = StepCancelled
	log.Debug(log.CatUI, "style picker cancelled")
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.step == StepDone || m.step == StepCancelled {
		return ""
	}

	var body string
	var help string
	switch m.step {
	case StepStyle:
		body = m.styles.View()
		if s, ok := m.provider.Lookup(m.styles.Selected().Value); ok && s.Description() != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body,
				lipgloss.NewStyle().Foreground(styles.TextDescriptionColor).Width(boxWidth).Render(s.Description()))
		}
		help = "j/k move • enter select • esc quit"
	case StepAspect:
		body = m.aspects.View()
		help = "j/k move • enter select • esc back"
	case StepScene:
		body = m.scene.View()
		help = "enter render • esc back • ctrl+c quit"
	}

	sel := m.selection()
	preview := m.provider.RenderPrompt(sel.StyleID, sel.Title, sel.Scene)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(styles.PreviewStyle.Width(m.previewWidth()).Render(preview))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(help))
	return b.String()
}

func (m Model) previewWidth() int {
	if m.width > 4 {
		return m.width - 4
	}
	return boxWidth
}

package style

import (
	"strings"
	"text/template"
)

// DefaultID is the id of the style every unknown id falls back to.
const DefaultID = "default"

// Slot is the content substitution point every prompt template must contain once.
const Slot = "{{.Content}}"

// Source indicates where a style definition originated from.
type Source int

const (
	// SourceBuiltIn indicates a style bundled with the application.
	SourceBuiltIn Source = iota
	// SourceUser indicates a style from the user's styles directory.
	SourceUser
)

// String returns a human-readable representation of the Source.
func (s Source) String() string {
	switch s {
	case SourceBuiltIn:
		return "built-in"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// Summary is the (id, name) pair shown in selection lists.
type Summary struct {
	ID   string
	Name string
}

// Style is an immutable style definition.
type Style struct {
	id             string // e.g., "cinematic"
	name           string // e.g., "Cinematic"
	description    string // e.g., "Film still look with shallow depth of field"
	promptTemplate string // raw template text containing Slot once
	negativePrompt string // plain text, may be empty
	source         Source
	tmpl           *template.Template // parsed promptTemplate
}

// slotData is the value the prompt template executes against.
type slotData struct {
	Content string
}

// ID returns the style id (unique within a registry)
func (s *Style) ID() string {
	return s.id
}

// Name returns the human-readable name
func (s *Style) Name() string {
	return s.name
}

// Description returns the human-readable summary
func (s *Style) Description() string {
	return s.description
}

// PromptTemplate returns the raw prompt template text.
func (s *Style) PromptTemplate() string {
	return s.promptTemplate
}

// NegativePrompt returns the negative prompt, or empty string if none is defined.
func (s *Style) NegativePrompt() string {
	return s.negativePrompt
}

// Source returns where the style was defined (built-in or user).
func (s *Style) Source() Source {
	return s.source
}

// Summary returns the style's (id, name) pair.
func (s *Style) Summary() Summary {
	return Summary{ID: s.id, Name: s.name}
}

// Render substitutes content into the prompt template.
func (s *Style) Render(content string) string {
	var b strings.Builder
	// The parse tree is restricted to text and the content slot by the builder,
	// so execution against slotData cannot fail.
	_ = s.tmpl.Execute(&b, slotData{Content: content})
	return b.String()
}

// Context combines a title and scene into the text substituted into the slot.
// Returns "title: scene" when title is non-empty, otherwise scene.
func Context(title, scene string) string {
	if title == "" {
		return scene
	}
	return title + ": " + scene
}

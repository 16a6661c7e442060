package style

import (
	"errors"
	"fmt"
	"text/template"
	"text/template/parse"
)

// Builder errors
var (
	ErrEmptyID         = errors.New("style id cannot be empty")
	ErrEmptyName       = errors.New("style name cannot be empty")
	ErrMissingSlot     = errors.New("prompt template must contain the " + Slot + " slot")
	ErrMultipleSlots   = errors.New("prompt template must contain the " + Slot + " slot exactly once")
	ErrInvalidTemplate = errors.New("prompt template may only contain text and the " + Slot + " slot")
	ErrSlotInNegative  = errors.New("negative prompt cannot contain template actions")
)

// Builder provides a fluent API for creating styles
type Builder struct {
	id             string
	name           string
	description    string
	promptTemplate string
	negativePrompt string
	source         Source
}

// NewBuilder creates a new style builder
func NewBuilder(id string) *Builder {
	return &Builder{
		id: id,
	}
}

// Name sets the human-readable name
func (b *Builder) Name(n string) *Builder {
	b.name = n
	return b
}

// Description sets the human-readable summary
func (b *Builder) Description(d string) *Builder {
	b.description = d
	return b
}

// Prompt sets the prompt template
func (b *Builder) Prompt(p string) *Builder {
	b.promptTemplate = p
	return b
}

// NegativePrompt sets the negative prompt
func (b *Builder) NegativePrompt(n string) *Builder {
	b.negativePrompt = n
	return b
}

// Source sets where the style came from
func (b *Builder) Source(s Source) *Builder {
	b.source = s
	return b
}

// Build creates the style, validating required fields and the prompt template
func (b *Builder) Build() (*Style, error) {
	if b.id == "" {
		return nil, ErrEmptyID
	}
	if b.name == "" {
		return nil, ErrEmptyName
	}

	tmpl, err := parsePromptTemplate(b.id, b.promptTemplate)
	if err != nil {
		return nil, err
	}

	if b.negativePrompt != "" {
		neg, err := template.New(b.id + "-negative").Parse(b.negativePrompt)
		if err != nil || hasActions(neg.Tree.Root) {
			return nil, ErrSlotInNegative
		}
	}

	return &Style{
		id:             b.id,
		name:           b.name,
		description:    b.description,
		promptTemplate: b.promptTemplate,
		negativePrompt: b.negativePrompt,
		source:         b.source,
		tmpl:           tmpl,
	}, nil
}

// parsePromptTemplate parses text and checks the tree holds text nodes plus
// exactly one {{.Content}} action.
func parsePromptTemplate(id, text string) (*template.Template, error) {
	tmpl, err := template.New(id).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if tmpl.Tree == nil || tmpl.Tree.Root == nil {
		return nil, ErrMissingSlot
	}

	slots := 0
	for _, node := range tmpl.Tree.Root.Nodes {
		switch n := node.(type) {
		case *parse.TextNode:
		case *parse.ActionNode:
			if n.String() != Slot {
				return nil, ErrInvalidTemplate
			}
			slots++
		default:
			return nil, ErrInvalidTemplate
		}
	}

	switch {
	case slots == 0:
		return nil, ErrMissingSlot
	case slots > 1:
		return nil, ErrMultipleSlots
	}
	return tmpl, nil
}

// hasActions reports whether a parsed tree contains anything besides text.
func hasActions(root *parse.ListNode) bool {
	if root == nil {
		return false
	}
	for _, node := range root.Nodes {
		if _, ok := node.(*parse.TextNode); !ok {
			return true
		}
	}
	return false
}

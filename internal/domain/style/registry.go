package style

import "errors"

// Registry errors
var (
	ErrNilStyle       = errors.New("style cannot be nil")
	ErrDuplicateID    = errors.New("duplicate style id")
	ErrMissingDefault = errors.New("registry must contain a \"" + DefaultID + "\" style")
)

// Registry holds the style table. It is built once and never mutated, so all
// methods are safe for concurrent use.
type Registry struct {
	styles []*Style
	byID   map[string]*Style
	dflt   *Style
}

// NewRegistry creates a registry from styles in definition order.
// Fails if any style is nil, an id repeats, or no "default" style is present.
func NewRegistry(styles ...*Style) (*Registry, error) {
	r := &Registry{
		styles: make([]*Style, 0, len(styles)),
		byID:   make(map[string]*Style, len(styles)),
	}
	for _, s := range styles {
		if s == nil {
			return nil, ErrNilStyle
		}
		if _, exists := r.byID[s.ID()]; exists {
			return nil, ErrDuplicateID
		}
		r.styles = append(r.styles, s)
		r.byID[s.ID()] = s
	}

	dflt, ok := r.byID[DefaultID]
	if !ok {
		return nil, ErrMissingDefault
	}
	r.dflt = dflt
	return r, nil
}

// List returns the (id, name) pair of every style in definition order
func (r *Registry) List() []Summary {
	result := make([]Summary, len(r.styles))
	for i, s := range r.styles {
		result[i] = s.Summary()
	}
	return result
}

// Styles returns all styles in definition order
func (r *Registry) Styles() []*Style {
	result := make([]*Style, len(r.styles))
	copy(result, r.styles)
	return result
}

// Len returns the number of styles
func (r *Registry) Len() int {
	return len(r.styles)
}

// Lookup returns the style for id without falling back.
func (r *Registry) Lookup(id string) (*Style, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Get returns the style for id, or the default style if id is unknown or empty.
func (r *Registry) Get(id string) *Style {
	if s, ok := r.byID[id]; ok {
		return s
	}
	return r.dflt
}

// Default returns the fallback style
func (r *Registry) Default() *Style {
	return r.dflt
}

// RenderPrompt renders the prompt for style id with the given title and scene.
func (r *Registry) RenderPrompt(id, title, scene string) string {
	return r.Get(id).Render(Context(title, scene))
}

// NegativePrompt returns the negative prompt for style id.
func (r *Registry) NegativePrompt(id string) string {
	return r.Get(id).NegativePrompt()
}

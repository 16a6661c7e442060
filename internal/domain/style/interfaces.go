package style

// Provider defines read-only access to a style table.
// Callers that only render prompts depend on this rather than *Registry.
type Provider interface {
	// List returns the (id, name) pair of every style in definition order.
	List() []Summary

	// Get returns the style for id, falling back to the default style.
	Get(id string) *Style

	// Lookup returns the style for id without falling back.
	Lookup(id string) (*Style, bool)

	// RenderPrompt renders the prompt for style id with the given title and scene.
	RenderPrompt(id, title, scene string) string

	// NegativePrompt returns the negative prompt for style id.
	NegativePrompt(id string) string
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)

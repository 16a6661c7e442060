package style

import (
	"fmt"
	"io/fs"

	domain "github.com/zjrosen/stylebook/internal/domain/style"
	"github.com/zjrosen/stylebook/internal/log"
)

// RenderRequest is what an image-generation caller supplies.
type RenderRequest struct {
	StyleID     string // Unknown or empty ids fall back to "default"
	Title       string // Optional, prefixed to the scene as "title: scene"
	Scene       string // Scene content, inserted literally
	AspectRatio string // Optional, e.g. "9:16"; unknown ids fall back to 16:9
}

// RenderResult is ready for direct submission to an image generator.
type RenderResult struct {
	StyleID        string // The style actually used after fallback
	Prompt         string
	NegativePrompt string
	AspectRatio    domain.AspectRatio
}

// StyleService handles style registry operations
type StyleService struct {
	registry *domain.Registry
}

// NewStyleService creates a style service from the built-in tables in builtinFS
// and, when userBaseDir is non-empty, the user tables under userBaseDir/styles.
// User styles are appended after built-ins; a user style reusing an existing id is skipped.
func NewStyleService(builtinFS fs.FS, userBaseDir string) (*StyleService, error) {
	builtin, err := LoadStylesFromYAML(builtinFS)
	if err != nil {
		return nil, fmt.Errorf("load built-in styles: %w", err)
	}

	user, err := LoadUserStylesFromDir(userBaseDir)
	if err != nil {
		return nil, fmt.Errorf("load user styles: %w", err)
	}

	reg, err := domain.NewRegistry(mergeStyles(builtin, user)...)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	log.Info(log.CatStyles, "style registry ready", "styles", reg.Len(), "built_in", len(builtin), "user", len(user))
	return NewStyleServiceFromRegistry(reg), nil
}

// NewStyleServiceFromRegistry wraps an already built registry.
func NewStyleServiceFromRegistry(reg *domain.Registry) *StyleService {
	return &StyleService{registry: reg}
}

// mergeStyles appends user styles after built-ins, dropping ids already taken.
func mergeStyles(builtin, user []*domain.Style) []*domain.Style {
	merged := make([]*domain.Style, 0, len(builtin)+len(user))
	taken := make(map[string]bool, len(builtin)+len(user))
	for _, s := range builtin {
		taken[s.ID()] = true
		merged = append(merged, s)
	}
	for _, s := range user {
		if taken[s.ID()] {
			log.Warn(log.CatStyles, "skipping user style with duplicate id", "id", s.ID())
			continue
		}
		taken[s.ID()] = true
		merged = append(merged, s)
	}
	return merged
}

// Registry returns the underlying read-only style table
func (s *StyleService) Registry() domain.Provider {
	return s.registry
}

// ListStyles returns all (id, name) pairs in definition order
func (s *StyleService) ListStyles() []domain.Summary {
	return s.registry.List()
}

// Styles returns all style definitions in definition order
func (s *StyleService) Styles() []*domain.Style {
	return s.registry.Styles()
}

// GetStyle returns the style for id, falling back to the default style
func (s *StyleService) GetStyle(id string) *domain.Style {
	style := s.registry.Get(id)
	if style.ID() != id {
		log.Debug(log.CatStyles, "unknown style id, using default", "requested", id, "used", style.ID())
	}
	return style
}

// Lookup returns the style for id without falling back
func (s *StyleService) Lookup(id string) (*domain.Style, bool) {
	return s.registry.Lookup(id)
}

// RenderPrompt renders the prompt for style id with the given title and scene
func (s *StyleService) RenderPrompt(id, title, scene string) string {
	return s.GetStyle(id).Render(domain.Context(title, scene))
}

// GetNegativePrompt returns the negative prompt for style id
func (s *StyleService) GetNegativePrompt(id string) string {
	return s.GetStyle(id).NegativePrompt()
}

// Render builds the prompt pair and frame size for a request. It never fails.
func (s *StyleService) Render(req RenderRequest) RenderResult {
	style := s.GetStyle(req.StyleID)
	return RenderResult{
		StyleID:        style.ID(),
		Prompt:         style.Render(domain.Context(req.Title, req.Scene)),
		NegativePrompt: style.NegativePrompt(),
		AspectRatio:    domain.GetAspectRatio(req.AspectRatio),
	}
}

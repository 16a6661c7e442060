package presentation

import (
	appstyle "github.com/zjrosen/stylebook/internal/application/style"
	domain "github.com/zjrosen/stylebook/internal/domain/style"
)

// StyleSummaryDTO represents a style in list output
type StyleSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// StyleDTO represents a full style definition
type StyleDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Source         string `json:"source"`
}

// RenderDTO is the prompt pair handed to an image generator
type RenderDTO struct {
	StyleID        string `json:"style_id"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	AspectRatio    string `json:"aspect_ratio"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// FromDomainStyleSummary converts a domain style to a list DTO
func FromDomainStyleSummary(s *domain.Style) StyleSummaryDTO {
	return StyleSummaryDTO{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		Source:      s.Source().String(),
	}
}

// FromDomainStyleSummaries converts a slice of domain styles to list DTOs
func FromDomainStyleSummaries(styles []*domain.Style) []StyleSummaryDTO {
	dtos := make([]StyleSummaryDTO, len(styles))
	for i, s := range styles {
		dtos[i] = FromDomainStyleSummary(s)
	}
	return dtos
}

// FromDomainStyle converts a domain style to a DTO
func FromDomainStyle(s *domain.Style) StyleDTO {
	return StyleDTO{
		ID:             s.ID(),
		Name:           s.Name(),
		Description:    s.Description(),
		Prompt:         s.PromptTemplate(),
		NegativePrompt: s.NegativePrompt(),
		Source:         s.Source().String(),
	}
}

// FromRenderResult converts a render result to a DTO
func FromRenderResult(r appstyle.RenderResult) RenderDTO {
	return RenderDTO{
		StyleID:        r.StyleID,
		Prompt:         r.Prompt,
		NegativePrompt: r.NegativePrompt,
		AspectRatio:    r.AspectRatio.ID,
		Width:          r.AspectRatio.Width,
		Height:         r.AspectRatio.Height,
	}
}

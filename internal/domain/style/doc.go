// Package style implements the domain layer for image-prompt style templates.
//
// The package contains only pure Go code with standard library imports. It has no
// knowledge of where definitions come from (embedded YAML, user directories) or how
// rendered prompts are consumed.
//
// # Core Types
//
// Style is an immutable style definition: id, display name, description, a prompt
// template holding exactly one content slot, and a negative prompt. Use Builder for
// construction; it validates the template once so rendering never fails.
//
// Registry is the ordered, read-only collection of styles. It provides:
//   - List for selection UIs, in definition order
//   - Get with silent fallback to the "default" style for unknown ids
//   - Lookup for strict, non-falling-back access
//   - RenderPrompt and NegativePrompt for image-generation callers
//
// AspectRatio is a value object describing an output frame offered next to a style.
//
// # Rendering
//
// A prompt template marks the content slot with {{.Content}}:
//
//	"cinematic film still of {{.Content}}, anamorphic lens, shallow depth of field"
//
// The content is "{title}: {scene}" when a title is given, otherwise the scene alone.
// Scene text is inserted literally.
package style

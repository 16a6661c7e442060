package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testDefaultTemplate = "high quality illustration of " + Slot + ", soft light"

func mustStyle(t *testing.T, id, name, prompt, negative string) *Style {
	t.Helper()
	s, err := NewBuilder(id).Name(name).Prompt(prompt).NegativePrompt(negative).Build()
	require.NoError(t, err)
	return s
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		mustStyle(t, DefaultID, "Default", testDefaultTemplate, "blurry, low quality"),
		mustStyle(t, "noir", "Film Noir", "black and white noir shot of "+Slot, "color, cheerful"),
		mustStyle(t, "anime", "Anime", "anime key visual, "+Slot, "photorealistic"),
	)
	require.NoError(t, err)
	return reg
}

func TestNewRegistry_Errors(t *testing.T) {
	dflt := mustStyle(t, DefaultID, "Default", Slot, "")
	other := mustStyle(t, "other", "Other", Slot, "")

	_, err := NewRegistry(other)
	require.ErrorIs(t, err, ErrMissingDefault)

	_, err = NewRegistry(dflt, other, mustStyle(t, "other", "Other 2", Slot, ""))
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewRegistry(dflt, nil)
	require.ErrorIs(t, err, ErrNilStyle)

	_, err = NewRegistry()
	require.ErrorIs(t, err, ErrMissingDefault)
}

func TestRegistry_List_DefinitionOrder(t *testing.T) {
	reg := testRegistry(t)

	list := reg.List()
	require.Equal(t, []Summary{
		{ID: DefaultID, Name: "Default"},
		{ID: "noir", Name: "Film Noir"},
		{ID: "anime", Name: "Anime"},
	}, list)
	require.Equal(t, reg.Len(), len(list))
}

func TestRegistry_List_MatchesDefinitions(t *testing.T) {
	reg := testRegistry(t)

	for _, summary := range reg.List() {
		s, ok := reg.Lookup(summary.ID)
		require.True(t, ok)
		require.Equal(t, s.Name(), summary.Name)
	}
}

func TestRegistry_Get_KnownIDs(t *testing.T) {
	reg := testRegistry(t)

	for _, s := range reg.Styles() {
		require.Equal(t, s.ID(), reg.Get(s.ID()).ID())
	}
}

func TestRegistry_Get_FallsBackToDefault(t *testing.T) {
	reg := testRegistry(t)

	require.Same(t, reg.Get(DefaultID), reg.Get("nonexistent-id"))
	require.Same(t, reg.Get(DefaultID), reg.Get(""))
	require.Same(t, reg.Default(), reg.Get("NOIR"), "lookup is case-sensitive")
}

func TestRegistry_Lookup_NoFallback(t *testing.T) {
	reg := testRegistry(t)

	s, ok := reg.Lookup("nonexistent-id")
	require.False(t, ok)
	require.Nil(t, s)
}

func TestRegistry_Styles_ReturnsCopy(t *testing.T) {
	reg := testRegistry(t)

	styles := reg.Styles()
	styles[0] = nil

	require.NotNil(t, reg.Styles()[0])
}

func TestRegistry_RenderPrompt(t *testing.T) {
	reg := testRegistry(t)

	require.Equal(t,
		"high quality illustration of a quiet forest, soft light",
		reg.RenderPrompt(DefaultID, "", "a quiet forest"))
	require.Equal(t,
		"high quality illustration of Episode 1: a quiet forest, soft light",
		reg.RenderPrompt(DefaultID, "Episode 1", "a quiet forest"))
	require.Equal(t,
		"black and white noir shot of a rainy alley",
		reg.RenderPrompt("noir", "", "a rainy alley"))
	require.Equal(t,
		"high quality illustration of , soft light",
		reg.RenderPrompt(DefaultID, "", ""))
}

func TestRegistry_RenderPrompt_NoLeadingSeparator(t *testing.T) {
	reg := testRegistry(t)

	prompt := reg.RenderPrompt(DefaultID, "", "a quiet forest")
	require.NotContains(t, prompt, ": a quiet forest")
}

func TestRegistry_NegativePrompt(t *testing.T) {
	reg := testRegistry(t)

	require.Equal(t, "color, cheerful", reg.NegativePrompt("noir"))
	require.Equal(t, "blurry, low quality", reg.NegativePrompt("missing"))

	empty, err := NewRegistry(mustStyle(t, DefaultID, "Default", Slot, ""))
	require.NoError(t, err)
	require.Equal(t, "", empty.NegativePrompt(DefaultID))
}

// ============================================================================
// Property-Based Tests
// ============================================================================

// TestProperty_RenderInsertsContentLiterally verifies that arbitrary titles and
// scenes end up verbatim in the slot, including text that looks like template syntax.
func TestProperty_RenderInsertsContentLiterally(t *testing.T) {
	reg := testRegistry(t)

	rapid.Check(t, func(t *rapid.T) {
		title := rapid.String().Draw(t, "title")
		scene := rapid.String().Draw(t, "scene")

		expected := strings.Replace(testDefaultTemplate, Slot, Context(title, scene), 1)
		if got := reg.RenderPrompt(DefaultID, title, scene); got != expected {
			t.Fatalf("RenderPrompt(%q, %q) = %q, want %q", title, scene, got, expected)
		}
	})
}

// TestProperty_RenderIsDeterministic verifies repeated calls yield identical output.
func TestProperty_RenderIsDeterministic(t *testing.T) {
	reg := testRegistry(t)
	ids := []string{DefaultID, "noir", "anime", "unknown"}

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.SampledFrom(ids).Draw(t, "id")
		title := rapid.String().Draw(t, "title")
		scene := rapid.String().Draw(t, "scene")

		first := reg.RenderPrompt(id, title, scene)
		second := reg.RenderPrompt(id, title, scene)
		if first != second {
			t.Fatalf("RenderPrompt not deterministic: %q != %q", first, second)
		}
	})
}

// TestProperty_UnknownIDsRenderAsDefault verifies the silent fallback for any id
// not in the table.
func TestProperty_UnknownIDsRenderAsDefault(t *testing.T) {
	reg := testRegistry(t)

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.String().Draw(t, "id")
		if _, ok := reg.Lookup(id); ok {
			t.Skip("id is registered")
		}
		scene := rapid.String().Draw(t, "scene")

		if got, want := reg.RenderPrompt(id, "", scene), reg.RenderPrompt(DefaultID, "", scene); got != want {
			t.Fatalf("RenderPrompt(%q) = %q, want default %q", id, got, want)
		}
		if got := reg.NegativePrompt(id); got != reg.NegativePrompt(DefaultID) {
			t.Fatalf("NegativePrompt(%q) = %q, want default", id, got)
		}
	})
}

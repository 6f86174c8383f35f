package text

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/theme"
)

type recordingRenderer struct {
	props box.Props
	err   error
}

func (r *recordingRenderer) Render(props box.Props) (string, error) {
	r.props = props
	return "rendered", r.err
}

func TestElementUsesContextTheme(t *testing.T) {
	component := New(WithLogger(zerolog.Nop()))

	ctx := theme.WithTheme(context.Background(), testTheme)
	element, err := component.Element(ctx, Props{"size": 3})
	require.NoError(t, err)
	require.Equal(t, "20px", element.Style[box.FontSize])
	require.Equal(t, "#333", element.Style[box.Color])
}

func TestElementFallsBackToDefaultTheme(t *testing.T) {
	component := New(WithLogger(zerolog.Nop()))

	element, err := component.Element(context.Background(), Props{})
	require.NoError(t, err)
	require.Equal(t, theme.Default.Text.FontFamily, element.Style[box.FontFamily])
	require.Equal(t, theme.Default.Text.Color, element.Style[box.Color])
}

func TestElementExplicitThemeWinsOverContext(t *testing.T) {
	component := New(WithTheme(testTheme), WithLogger(zerolog.Nop()))

	ctx := theme.WithTheme(context.Background(), theme.HighContrast)
	require.Equal(t, "test", component.Theme(ctx).Name)
}

func TestElementStyleOverrideWins(t *testing.T) {
	component := New(WithTheme(testTheme), WithLogger(zerolog.Nop()))

	overrides := []any{
		box.Style{"color": "red"},
		map[string]any{"color": "red"},
		"color: red",
		map[string]any{"color": "red", "font-size": "14px"},
	}
	for _, override := range overrides {
		element, err := component.Element(context.Background(), Props{
			"color": "blue",
			"size":  1,
			"style": override,
		})
		require.NoError(t, err)
		require.Equal(t, "red", element.Style[box.Color], "override %#v", override)
		require.Equal(t, "14px", element.Style[box.FontSize])
		require.NotContains(t, element.Attrs, "style")
		require.NotContains(t, element.Style, "font-size")
	}

	element, err := component.Element(context.Background(), Props{
		"size":  1,
		"style": map[string]any{"font-size": "20px", "line-height": 2},
	})
	require.NoError(t, err)
	require.Equal(t, "20px", element.Style[box.FontSize])
	require.Equal(t, 2, element.Style[box.LineHeight])
	require.NotContains(t, element.Style, "font-size")
}

func TestElementForwardsAsAndAttributes(t *testing.T) {
	component := New(WithTheme(testTheme), WithLogger(zerolog.Nop()))

	element, err := component.Element(context.Background(), Props{
		"as":       "h2",
		"id":       "intro",
		"children": "Welcome",
		"italic":   true,
	})
	require.NoError(t, err)
	require.Equal(t, "h2", element.As)
	require.Equal(t, box.Attrs{"id": "intro", "children": "Welcome"}, element.Attrs)
	require.Equal(t, "italic", element.Style[box.FontStyle])
}

func TestElementRejectsUnsupportedOverride(t *testing.T) {
	component := New(WithLogger(zerolog.Nop()))

	_, err := component.Element(context.Background(), Props{"style": 42})
	require.Error(t, err)
}

func TestRenderDelegatesToRenderer(t *testing.T) {
	renderer := &recordingRenderer{}
	component := New(WithTheme(testTheme), WithRenderer(renderer), WithLogger(zerolog.Nop()))

	out, err := component.Render(context.Background(), Props{"bold": true, "children": "Hi"})
	require.NoError(t, err)
	require.Equal(t, "rendered", out)
	require.Equal(t, 700, renderer.props.Style[box.FontWeight])
	require.Equal(t, "Hi", renderer.props.Children())

	renderer.err = errors.New("boom")
	_, err = component.Render(context.Background(), Props{})
	require.ErrorContains(t, err, "boom")
}

func TestRenderHTML(t *testing.T) {
	component := New(WithTheme(testTheme), WithRenderer(box.NewHTMLRenderer()), WithLogger(zerolog.Nop()))

	out, err := component.Render(context.Background(), Props{
		"as":       "p",
		"children": "Body",
		"size":     0,
		"style":    "color: red",
	})
	require.NoError(t, err)
	require.Equal(t, `<p style="font-family: Inter, sans-serif; color: red; font-size: 12px;">Body</p>`, out)
}

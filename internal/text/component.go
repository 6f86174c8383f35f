package text

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/logging"
	"github.com/opencode-ai/textstyle/internal/theme"
)

// Text renders typography props through a box renderer.
type Text struct {
	theme    *theme.Theme
	renderer box.Renderer
	logger   zerolog.Logger
}

// Option configures a Text component.
type Option func(*Text)

// WithTheme pins the theme, taking precedence over any theme on the context.
func WithTheme(th theme.Theme) Option {
	return func(t *Text) {
		t.theme = &th
	}
}

// WithRenderer sets the box renderer used by Render.
func WithRenderer(r box.Renderer) Option {
	return func(t *Text) {
		if r != nil {
			t.renderer = r
		}
	}
}

// WithLogger sets the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Text) {
		t.logger = logger
	}
}

// New creates a text component. Without options it renders to the terminal
// using whatever theme the render context carries.
func New(opts ...Option) *Text {
	t := &Text{
		renderer: box.NewTerminalRenderer(nil),
		logger:   logging.Component("text"),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Theme returns the theme a render under ctx resolves against.
func (t *Text) Theme(ctx context.Context) theme.Theme {
	if t.theme != nil {
		return *t.theme
	}
	return theme.FromContext(ctx)
}

// Element resolves props into the box props the renderer receives. The
// caller's style prop is merged last and wins key by key; it may be a
// box.Style, a map, or CSS declaration text. CSS property names such as
// font-size override the matching camelCase key.
func (t *Text) Element(ctx context.Context, props Props) (box.Props, error) {
	as, override, rest := splitWrapperProps(props)

	extra, err := styleOverride(override)
	if err != nil {
		return box.Props{}, err
	}

	th := t.Theme(ctx)
	resolved, remaining := ComputeStyle(th, rest)

	t.logger.Debug().
		Str("theme", th.Name).
		Int("resolved_keys", len(resolved)).
		Int("override_keys", len(extra)).
		Int("passthrough_keys", len(remaining)).
		Msg("resolved text style")

	return box.Props{
		As:    as,
		Attrs: box.Attrs(remaining),
		Style: box.Merge(resolved, extra),
	}, nil
}

// Render resolves props and hands the result to the configured renderer.
func (t *Text) Render(ctx context.Context, props Props) (string, error) {
	element, err := t.Element(ctx, props)
	if err != nil {
		return "", err
	}

	out, err := t.renderer.Render(element)
	if err != nil {
		return "", fmt.Errorf("render text: %w", err)
	}
	return out, nil
}

func splitWrapperProps(props Props) (string, any, Props) {
	rest := props.Clone()

	var as string
	if value, ok := rest.lookup(PropAs); ok {
		as = box.FormatValue(value)
	}
	override := rest[PropStyle]

	delete(rest, PropAs)
	delete(rest, PropStyle)
	return as, override, rest
}

func styleOverride(value any) (box.Style, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case box.Style:
		return box.NormalizeStyle(v), nil
	case map[string]any:
		return box.NormalizeStyle(v), nil
	case Props:
		return box.NormalizeStyle(v), nil
	case string:
		style, err := box.ParseStyle(v)
		if err != nil {
			return nil, fmt.Errorf("style override: %w", err)
		}
		return style, nil
	default:
		return nil, fmt.Errorf("style override: unsupported type %T", value)
	}
}

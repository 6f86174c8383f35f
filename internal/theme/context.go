package theme

import "context"

type contextKey struct{}

// WithTheme returns a context carrying t for components rendered beneath it.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme attached to ctx, or Default when none is.
func FromContext(ctx context.Context) Theme {
	if ctx == nil {
		return Default
	}
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Default
}

package text

import (
	"math"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/theme"
)

const pxUnit = "px"

// ComputeStyle resolves typography props against th. It returns the resolved
// style and every prop it did not consume. Neither input is modified.
//
// fontFamily and color are always set, falling back to the theme's text
// tokens. Every other style key is present only when its prop resolved to a
// value.
func ComputeStyle(th theme.Theme, props Props) (box.Style, Props) {
	t, rest := normalize(props)

	style := box.Style{
		box.FontFamily: th.Text.FontFamily,
		box.Color:      th.Text.Color,
	}
	if t.fontFamily != nil {
		style[box.FontFamily] = t.fontFamily
	}
	if t.color != nil {
		style[box.Color] = t.color
	}

	if truthy(t.lineHeight) {
		style[box.LineHeight] = resolveLineHeight(t.lineHeight)
	}

	if size, ok := resolveFontSize(th, t.fontSize); ok {
		style[box.FontSize] = size
	}

	if truthy(t.textAlign) {
		style[box.TextAlign] = t.textAlign
	}

	if truthy(t.bold) {
		style[box.FontWeight] = th.Text.Bold
	}

	if truthy(t.textDecoration) {
		style[box.TextDecoration] = t.textDecoration
	}

	if truthy(t.textTransform) {
		style[box.TextTransform] = t.textTransform
	}

	if truthy(t.italic) {
		style[box.FontStyle] = "italic"
	}

	return style, rest
}

// resolveLineHeight appends a px unit to unitless values.
func resolveLineHeight(value any) any {
	if text, _, ok := numeric(value); ok {
		return text + pxUnit
	}
	return value
}

// resolveFontSize treats a numeric size below the scale length as a scale
// level and anything larger as a pixel value. Non-numeric sizes pass through.
func resolveFontSize(th theme.Theme, value any) (any, bool) {
	if value == nil {
		return nil, false
	}

	_, parsed, ok := numeric(value)
	if !ok {
		if truthy(value) {
			return value, true
		}
		return nil, false
	}

	if parsed < float64(len(th.TextScale)) && parsed == math.Trunc(parsed) {
		if px, found := th.Scale(int(parsed)); found {
			return formatFloat(px) + pxUnit, true
		}
	}
	return formatFloat(parsed) + pxUnit, true
}

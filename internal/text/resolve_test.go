package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/theme"
)

var testTheme = theme.Theme{
	Name: "test",
	Text: theme.TextTokens{
		FontFamily: "Inter, sans-serif",
		Color:      "#333",
		Bold:       700,
	},
	TextScale: []float64{12, 14, 16, 20, 24},
}

func TestComputeStyleScenario(t *testing.T) {
	style, rest := ComputeStyle(testTheme, Props{"size": 3, "bold": true, "align": "center"})

	require.Equal(t, box.Style{
		box.FontFamily: "Inter, sans-serif",
		box.Color:      "#333",
		box.FontSize:   "20px",
		box.FontWeight: 700,
		box.TextAlign:  "center",
	}, style)
	require.Empty(t, rest)
}

func TestComputeStyleBaseFieldsAlwaysPresent(t *testing.T) {
	style, _ := ComputeStyle(testTheme, Props{})
	require.Equal(t, box.Style{box.FontFamily: "Inter, sans-serif", box.Color: "#333"}, style)

	style, _ = ComputeStyle(testTheme, Props{"fontFamily": "monospace", "color": "tomato"})
	require.Equal(t, "monospace", style[box.FontFamily])
	require.Equal(t, "tomato", style[box.Color])

	style, _ = ComputeStyle(testTheme, Props{"color": nil})
	require.Equal(t, "#333", style[box.Color], "nil counts as not supplied")
}

func TestComputeStyleFontSize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "scale index int", value: 0, want: "12px"},
		{name: "scale index last", value: 4, want: "24px"},
		{name: "scale index string", value: "2", want: "16px"},
		{name: "scale index float", value: 1.0, want: "14px"},
		{name: "scale index int8", value: int8(3), want: "20px"},
		{name: "scale index uint64", value: uint64(3), want: "20px"},
		{name: "literal uint16", value: uint16(18), want: "18px"},
		{name: "literal float32", value: float32(12.5), want: "12.5px"},
		{name: "literal at scale length", value: 5, want: "5px"},
		{name: "literal int", value: 18, want: "18px"},
		{name: "literal string", value: "18", want: "18px"},
		{name: "literal decimal string", value: "16.50", want: "16.5px"},
		{name: "fraction below scale length", value: 2.5, want: "2.5px"},
		{name: "negative", value: -1, want: "-1px"},
		{name: "trailing dot", value: "30.", want: "30px"},
		{name: "non numeric passes through", value: "2em", want: "2em"},
		{name: "keyword passes through", value: "larger", want: "larger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, _ := ComputeStyle(testTheme, Props{"fontSize": tt.value})
			require.Equal(t, tt.want, style[box.FontSize])
		})
	}
}

func TestComputeStyleFontSizeOmitted(t *testing.T) {
	for _, value := range []any{nil, "", false, math.NaN()} {
		style, _ := ComputeStyle(testTheme, Props{"fontSize": value})
		_, ok := style[box.FontSize]
		require.False(t, ok, "fontSize %#v should be omitted", value)
	}
}

func TestComputeStyleLineHeight(t *testing.T) {
	tests := []struct {
		value any
		want  any
	}{
		{value: 24, want: "24px"},
		{value: 1.5, want: "1.5px"},
		{value: int8(3), want: "3px"},
		{value: uint64(3), want: "3px"},
		{value: "1.5", want: "1.5px"},
		{value: "-2", want: "-2px"},
		{value: "normal", want: "normal"},
		{value: "1.5em", want: "1.5em"},
	}

	for _, tt := range tests {
		style, _ := ComputeStyle(testTheme, Props{"lineHeight": tt.value})
		require.Equal(t, tt.want, style[box.LineHeight], "lineHeight %#v", tt.value)
	}

	for _, value := range []any{nil, 0, "", uint8(0), int8(0), uint64(0)} {
		style, _ := ComputeStyle(testTheme, Props{"lineHeight": value})
		_, ok := style[box.LineHeight]
		require.False(t, ok, "lineHeight %#v should be omitted", value)
	}
}

func TestComputeStyleAliasPrecedence(t *testing.T) {
	style, rest := ComputeStyle(testTheme, Props{
		"size":           2,
		"fontSize":       "10px",
		"align":          "left",
		"textAlign":      "right",
		"decoration":     "none",
		"textDecoration": "underline",
		"transform":      "lowercase",
		"textTransform":  "uppercase",
	})

	require.Equal(t, "10px", style[box.FontSize])
	require.Equal(t, "right", style[box.TextAlign])
	require.Equal(t, "underline", style[box.TextDecoration])
	require.Equal(t, "uppercase", style[box.TextTransform])
	require.Empty(t, rest)
}

func TestComputeStyleShorthandOnly(t *testing.T) {
	style, _ := ComputeStyle(testTheme, Props{
		"decoration": "line-through",
		"transform":  "capitalize",
		"fontSize":   nil,
		"size":       1,
	})

	require.Equal(t, "line-through", style[box.TextDecoration])
	require.Equal(t, "capitalize", style[box.TextTransform])
	require.Equal(t, "14px", style[box.FontSize])
}

func TestComputeStyleBoldAndItalic(t *testing.T) {
	style, _ := ComputeStyle(testTheme, Props{"bold": true, "italic": true})
	require.Equal(t, 700, style[box.FontWeight])
	require.Equal(t, "italic", style[box.FontStyle])

	style, _ = ComputeStyle(testTheme, Props{"bold": false, "italic": false})
	require.NotContains(t, style, box.FontWeight)
	require.NotContains(t, style, box.FontStyle)

	for _, zero := range []any{int8(0), int16(0), uint8(0), uint64(0), 0.0} {
		style, _ = ComputeStyle(testTheme, Props{"bold": zero, "italic": zero})
		require.NotContains(t, style, box.FontWeight, "bold %#v", zero)
		require.NotContains(t, style, box.FontStyle, "italic %#v", zero)
	}

	style, _ = ComputeStyle(testTheme, Props{"bold": uint64(1), "italic": int8(-1)})
	require.Equal(t, 700, style[box.FontWeight])
	require.Equal(t, "italic", style[box.FontStyle])

	keyword := testTheme
	keyword.Text.Bold = "bold"
	style, _ = ComputeStyle(keyword, Props{"bold": true})
	require.Equal(t, "bold", style[box.FontWeight])
}

func TestComputeStylePassesThroughUnknownProps(t *testing.T) {
	handler := func() {}
	props := Props{
		"id":       "headline",
		"onClick":  handler,
		"children": "Hello",
		"as":       "h1",
		"bold":     true,
	}

	_, rest := ComputeStyle(testTheme, props)

	require.Len(t, rest, 3)
	require.Equal(t, "headline", rest["id"])
	require.Equal(t, "Hello", rest["children"])
	require.NotNil(t, rest["onClick"])
	require.NotContains(t, rest, "as")
	require.NotContains(t, rest, "bold")

	require.Len(t, props, 5, "input props must not be modified")
}

func TestComputeStyleIdempotent(t *testing.T) {
	props := Props{"size": "3", "lineHeight": "1.2", "italic": 1}

	first, firstRest := ComputeStyle(testTheme, props)
	second, secondRest := ComputeStyle(testTheme, props)

	require.Equal(t, first, second)
	require.Equal(t, firstRest, secondRest)
}

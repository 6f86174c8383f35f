package box

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const boldWeightThreshold = 600

// TerminalRenderer renders boxes as styled terminal text. Font family,
// font size and line height have no terminal equivalent and are ignored.
type TerminalRenderer struct {
	// Renderer selects the lipgloss output profile; nil uses the default.
	Renderer *lipgloss.Renderer
}

// NewTerminalRenderer returns a renderer bound to r, or the default when nil.
func NewTerminalRenderer(r *lipgloss.Renderer) *TerminalRenderer {
	return &TerminalRenderer{Renderer: r}
}

// Render implements Renderer.
func (t *TerminalRenderer) Render(props Props) (string, error) {
	content := applyTransform(props.Children(), props.Style.String(TextTransform))
	return t.Style(props).Render(content), nil
}

// Style converts box props into a lipgloss style.
func (t *TerminalRenderer) Style(props Props) lipgloss.Style {
	style := lipgloss.NewStyle()
	if t != nil && t.Renderer != nil {
		style = t.Renderer.NewStyle()
	}

	s := props.Style
	if color := s.String(Color); color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	if isBoldWeight(s[FontWeight]) {
		style = style.Bold(true)
	}
	if s.String(FontStyle) == "italic" {
		style = style.Italic(true)
	}

	decoration := s.String(TextDecoration)
	if strings.Contains(decoration, "underline") {
		style = style.Underline(true)
	}
	if strings.Contains(decoration, "line-through") {
		style = style.Strikethrough(true)
	}

	if width, ok := numericValue(props.Attrs["width"]); ok && width > 0 {
		style = style.Width(int(width))
	}
	switch s.String(TextAlign) {
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	case "left", "justify":
		style = style.Align(lipgloss.Left)
	}

	return style
}

func isBoldWeight(value any) bool {
	if value == nil {
		return false
	}
	if weight, ok := numericValue(value); ok {
		return weight >= boldWeightThreshold
	}
	switch FormatValue(value) {
	case "bold", "bolder":
		return true
	default:
		return false
	}
}

func applyTransform(content, transform string) string {
	switch transform {
	case "uppercase":
		return cases.Upper(language.Und).String(content)
	case "lowercase":
		return cases.Lower(language.Und).String(content)
	case "capitalize":
		return cases.Title(language.Und, cases.NoLower).String(content)
	default:
		return content
	}
}

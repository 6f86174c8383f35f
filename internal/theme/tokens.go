// Package theme provides the typography themes text styles resolve against.
package theme

import "sort"

// TextTokens defines the default text roles a theme supplies.
type TextTokens struct {
	FontFamily string `yaml:"fontFamily" json:"fontFamily"`
	Color      string `yaml:"color" json:"color"`
	// Bold is the weight emitted for bold text, a number (700) or a keyword ("bold").
	Bold any `yaml:"bold" json:"bold"`
}

// Theme bundles text tokens and a size scale with a name.
type Theme struct {
	Name string     `yaml:"name" json:"name"`
	Text TextTokens `yaml:"text" json:"text"`
	// TextScale holds pixel sizes indexed by scale level, starting at 0.
	TextScale []float64 `yaml:"textScale" json:"textScale"`
	Source    string    `yaml:"-" json:"source,omitempty"` // file path or "builtin"
}

// Scale returns the pixel size for a scale level.
func (t Theme) Scale(level int) (float64, bool) {
	if level < 0 || level >= len(t.TextScale) {
		return 0, false
	}
	return t.TextScale[level], true
}

// Themes lists the built-in themes by name.
var Themes = map[string]Theme{
	"default":       Default,
	"high-contrast": HighContrast,
}

// Lookup returns a built-in theme by name.
func Lookup(name string) (Theme, bool) {
	t, ok := Themes[name]
	return t, ok
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package theme

// HighContrast favors legibility: pure black text, heavier bold, larger steps.
var HighContrast = Theme{
	Name: "high-contrast",
	Text: TextTokens{
		FontFamily: `"Atkinson Hyperlegible", Verdana, sans-serif`,
		Color:      "#000000",
		Bold:       800,
	},
	TextScale: []float64{14, 16, 18, 22, 28, 36, 52, 72},
	Source:    "builtin",
}

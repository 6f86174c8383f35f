package theme

// Default is the baseline theme used when no other theme is supplied.
var Default = Theme{
	Name: "default",
	Text: TextTokens{
		FontFamily: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`,
		Color:      "#111111",
		Bold:       700,
	},
	TextScale: []float64{12, 14, 16, 20, 24, 32, 48, 64},
	Source:    "builtin",
}

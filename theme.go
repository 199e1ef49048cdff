package expandable

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the view
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Text   int // Main text
	More   int // Expand-control label
	Muted  int // Secondary text: code gutters, link targets
	Accent int // Headings and links in rich content
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Text:   -1,
		More:   5,
		Muted:  8,
		Accent: 5,
	}
}

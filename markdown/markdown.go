// Package markdown renders markdown source to ANSI-styled terminal text
// using goldmark for parsing and lipgloss for styling. The output is meant
// to be wrapped in expandable.Styled and handed to a text view.
package markdown

import "github.com/mstarzyk/expandable"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks are
// rendered verbatim behind a gutter, without reflow.
func Render(source string, width int, theme expandable.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}

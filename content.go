package expandable

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Content is an immutable text payload for a text view. Plain content is
// trimmed of surrounding whitespace at construction; styled content passes
// through untouched so embedded ANSI sequences survive.
type Content struct {
	raw    string
	styled bool
}

// Plain creates Content from an unstyled string. Leading and trailing
// whitespace and newlines are trimmed at construction.
func Plain(s string) Content {
	return Content{raw: strings.TrimSpace(s)}
}

// Styled creates Content from pre-styled text, such as the output of
// markdown.Render. No trimming is performed.
func Styled(s string) Content {
	return Content{raw: s, styled: true}
}

// Raw returns the stored text.
func (c Content) Raw() string { return c.raw }

// IsStyled reports whether the content carries its own ANSI styling.
func (c Content) IsStyled() bool { return c.styled }

// Empty reports whether there is nothing to display.
func (c Content) Empty() bool { return c.raw == "" }

// CollapseBlankLines returns the text with every run of two or more blank
// lines reduced to a single blank line. A line counts as blank when it
// contains only whitespace once ANSI sequences are stripped. The stored
// content is not modified; the view uses the result only for the truncated
// presentation.
func (c Content) CollapseBlankLines() string {
	lines := strings.Split(c.raw, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if isBlank(line) {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}

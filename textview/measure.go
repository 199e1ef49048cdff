package textview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Size is a rendered text extent: width in terminal cells, height in rows.
type Size struct {
	Width  int
	Height int
}

// wrapLines word-wraps text to width and returns the resulting display
// lines. Words longer than the width are hard-wrapped at the boundary. A
// non-positive width disables wrapping. Empty text yields no lines.
func wrapLines(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(ansi.Wrap(text, width, ""), "\n")
}

// measure reports the extent of text wrapped to width with no line-count
// constraint: the intrinsic size.
func measure(text string, width int) Size {
	return sizeOf(wrapLines(text, width))
}

// measureConstrained reports the extent of text wrapped to width and clipped
// to the first lineLimit display lines. A non-positive lineLimit means no
// constraint, making the result identical to measure.
func measureConstrained(text string, width, lineLimit int) Size {
	lines := wrapLines(text, width)
	if lineLimit > 0 && len(lines) > lineLimit {
		lines = lines[:lineLimit]
	}
	return sizeOf(lines)
}

func sizeOf(lines []string) Size {
	var s Size
	s.Height = len(lines)
	for _, line := range lines {
		if w := lineWidth(line); w > s.Width {
			s.Width = w
		}
	}
	return s
}

// lineWidth is the display width of one line in terminal cells. ANSI escape
// sequences are stripped first so styling never counts toward the width.
func lineWidth(line string) int {
	return uniseg.StringWidth(ansi.Strip(line))
}

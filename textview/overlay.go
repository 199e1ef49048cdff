package textview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// composeOverlay masks the trailing edge of the last visible line and lays
// the styled expand-control label over the freed space, right-aligned to
// width. labelWidth is the display width of the unstyled label text; the
// mask reserves exactly that many cells plus a one-cell gap, so text never
// collides with the control.
func composeOverlay(lastLine, styledLabel string, labelWidth, width int) string {
	if width <= 0 {
		return lastLine
	}

	budget := width - labelWidth - 1
	if budget <= 0 {
		// No room for any text: show as much of the label as fits.
		return ansi.Truncate(styledLabel, width, "")
	}

	masked := ansi.Truncate(lastLine, budget, ellipsis)
	pad := width - lineWidth(masked) - labelWidth
	if pad < 1 {
		pad = 1
	}
	return masked + strings.Repeat(" ", pad) + styledLabel
}

package expandable

import "github.com/charmbracelet/lipgloss"

const (
	// DefaultLineLimit is the number of lines shown while collapsed.
	DefaultLineLimit = 3

	// DefaultMoreLabel is the expand-control label text.
	DefaultMoreLabel = "more"
)

// Options bundles the display configuration for a text view. Options values
// are immutable: every With* method returns a modified copy, so a single
// value can be shared between views and specialized per view.
//
// The zero value is usable but has no line limit, label, or easing; start
// from DefaultOptions instead.
type Options struct {
	lineLimit      int
	moreLabel      string
	style          lipgloss.Style
	styleSet       bool
	moreStyle      lipgloss.Style
	moreStyleSet   bool
	easing         Easing
	collapseBack   bool
	collapseBlanks bool
}

// DefaultOptions returns the default configuration: line limit 3, label
// "more", EaseOutQuad transition, collapsing back disabled, blank-line
// collapsing enabled. Styles are left unset so the view falls back to its
// theme-derived styles.
func DefaultOptions() Options {
	return Options{
		lineLimit:      DefaultLineLimit,
		moreLabel:      DefaultMoreLabel,
		easing:         EaseOutQuad,
		collapseBlanks: true,
	}
}

// WithStyle sets the main text style.
func (o Options) WithStyle(s lipgloss.Style) Options {
	o.style = s
	o.styleSet = true
	return o
}

// WithForeground sets the main text color, preserving the rest of the style.
func (o Options) WithForeground(c lipgloss.TerminalColor) Options {
	o.style = o.style.Foreground(c)
	o.styleSet = true
	return o
}

// WithLineLimit sets the maximum number of lines shown while collapsed.
// Non-positive values disable the constraint; they are passed through
// unvalidated.
func (o Options) WithLineLimit(n int) Options {
	o.lineLimit = n
	return o
}

// WithMoreLabel sets the expand-control label text.
func (o Options) WithMoreLabel(label string) Options {
	o.moreLabel = label
	return o
}

// WithMoreStyle sets the expand-control style.
func (o Options) WithMoreStyle(s lipgloss.Style) Options {
	o.moreStyle = s
	o.moreStyleSet = true
	return o
}

// WithEasing sets the curve for the expand transition.
func (o Options) WithEasing(e Easing) Options {
	o.easing = e
	return o
}

// WithCollapseEnabled controls whether an expanded view can be collapsed
// again. Disabled by default, making the view a one-way expander.
func (o Options) WithCollapseEnabled(enabled bool) Options {
	o.collapseBack = enabled
	return o
}

// WithCollapseBlankLines controls whether runs of blank lines are collapsed
// in the truncated presentation. Enabled by default.
func (o Options) WithCollapseBlankLines(enabled bool) Options {
	o.collapseBlanks = enabled
	return o
}

// LineLimit returns the collapsed line limit.
func (o Options) LineLimit() int { return o.lineLimit }

// MoreLabel returns the expand-control label text.
func (o Options) MoreLabel() string { return o.moreLabel }

// Style returns the main text style and whether one was set.
func (o Options) Style() (lipgloss.Style, bool) { return o.style, o.styleSet }

// MoreStyle returns the expand-control style and whether one was set.
func (o Options) MoreStyle() (lipgloss.Style, bool) { return o.moreStyle, o.moreStyleSet }

// Easing returns the expand-transition curve, defaulting to Linear when none
// was configured.
func (o Options) Easing() Easing {
	if o.easing == nil {
		return Linear
	}
	return o.easing
}

// CollapseEnabled reports whether an expanded view may collapse again.
func (o Options) CollapseEnabled() bool { return o.collapseBack }

// CollapseBlankLines reports whether blank-line collapsing applies to the
// truncated presentation.
func (o Options) CollapseBlankLines() bool { return o.collapseBlanks }

// Package expandable provides a truncating "show more" text view for
// Bubble Tea. Content is clipped to a configurable number of display lines
// with an inline expand control overlaid on the last visible line; activating
// the view reveals the full text.
//
// The root package holds the framework-agnostic pieces: content payloads,
// presentation options, themes, and easing curves. The textview subpackage
// implements the Bubble Tea component, and the markdown subpackage renders
// markdown source into styled content the view can display.
package expandable

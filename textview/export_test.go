package textview

import "time"

// Measure exports measure for testing.
func Measure(text string, width int) Size { return measure(text, width) }

// MeasureConstrained exports measureConstrained for testing.
func MeasureConstrained(text string, width, limit int) Size {
	return measureConstrained(text, width, limit)
}

// WrapLines exports wrapLines for testing.
func WrapLines(text string, width int) []string { return wrapLines(text, width) }

// LineWidth exports lineWidth for testing.
func LineWidth(line string) int { return lineWidth(line) }

// ComposeOverlay exports composeOverlay for testing.
func ComposeOverlay(lastLine, styledLabel string, labelWidth, width int) string {
	return composeOverlay(lastLine, styledLabel, labelWidth, width)
}

// Animating reports whether an expand transition is in flight.
func Animating(m Model) bool { return m.animating }

// Revealed returns the number of lines the running transition has revealed.
func Revealed(m Model) int { return m.revealed }

// AnimRun returns the current animation run number.
func AnimRun(m Model) int { return m.animRun }

// AdvanceAnim advances a running transition to fraction t of its duration,
// bypassing the tick scheduling.
func AdvanceAnim(m Model, t float64) Model {
	return DeliverFrame(m, m.animRun, t)
}

// DeliverFrame delivers a frame stamped with the given run number at
// fraction t of the duration, whether or not the run is still current.
func DeliverFrame(m Model, run int, t float64) Model {
	now := m.animStart.Add(time.Duration(t * float64(animDuration)))
	m, _ = m.advanceAnim(frameMsg{id: m.id, run: run, now: now})
	return m
}

// DeliverForeignFrame delivers a frame stamped with another view's id.
func DeliverForeignFrame(m Model, t float64) Model {
	now := m.animStart.Add(time.Duration(t * float64(animDuration)))
	m, _ = m.advanceAnim(frameMsg{id: m.id + 1, run: m.animRun, now: now})
	return m
}

// FinishAnim fast-forwards a running expand transition to completion.
func FinishAnim(m Model) Model {
	m, _ = m.advanceAnim(frameMsg{id: m.id, run: m.animRun, now: m.animStart.Add(animDuration)})
	return m
}
